package chargen

// AbilityTable lists one number per ability under its sheet label. Field order
// fixes the key order of the encoded object.
type AbilityTable struct {
	Strength     int `json:"力量"`
	Dexterity    int `json:"敏捷"`
	Constitution int `json:"体质"`
	Intelligence int `json:"智力"`
	Wisdom       int `json:"感知"`
	Charisma     int `json:"魅力"`
}

// NewAbilityTable builds a table from values in slot order
func NewAbilityTable(values [AbilityCount]int) AbilityTable {
	return AbilityTable{
		Strength:     values[AbilityStrength],
		Dexterity:    values[AbilityDexterity],
		Constitution: values[AbilityConstitution],
		Intelligence: values[AbilityIntelligence],
		Wisdom:       values[AbilityWisdom],
		Charisma:     values[AbilityCharisma],
	}
}

// Values returns the table in slot order
func (t AbilityTable) Values() [AbilityCount]int {
	return [AbilityCount]int{t.Strength, t.Dexterity, t.Constitution, t.Intelligence, t.Wisdom, t.Charisma}
}

// Sheet is the exported form of a character
type Sheet struct {
	Name             string       `json:"name"`
	PlayerName       string       `json:"playerName"`
	Race             string       `json:"race"`
	Occupation       string       `json:"occupation"`
	Level            int          `json:"level"`
	AbilityScores    AbilityTable `json:"abilityScores"`
	AbilityModifiers AbilityTable `json:"abilityModifiers"`
	Size             string       `json:"size"`
	Speed            int          `json:"speed"`
	MaxHP            int          `json:"maxHP"`
	CurrentHP        int          `json:"currentHP"`
	TempHP           int          `json:"tempHP"`
}

// Sheet returns the export record for c
func (c *Character) Sheet() Sheet {
	return Sheet{
		Name:             c.Name,
		PlayerName:       c.PlayerName,
		Race:             c.Race,
		Occupation:       c.Occupation,
		Level:            c.Level,
		AbilityScores:    NewAbilityTable(c.Scores),
		AbilityModifiers: NewAbilityTable(c.Modifiers),
		Size:             c.Size,
		Speed:            c.Speed,
		MaxHP:            c.MaxHP,
		CurrentHP:        c.CurrentHP,
		TempHP:           c.TempHP,
	}
}
