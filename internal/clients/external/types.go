package external

// RaceData is the part of an SRD race the generator uses
type RaceData struct {
	ID             string
	Name           string
	Size           string
	Speed          int
	AbilityBonuses map[string]int
}

// ClassData is the part of an SRD class the generator uses
type ClassData struct {
	ID     string
	Name   string
	HitDie int
}
