package chargen

import (
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// BonusKind selects how a race adjusts ability scores
type BonusKind string

// Bonus kinds
const (
	// BonusKindFlat adds one to every ability
	BonusKindFlat BonusKind = "flat"
	// BonusKindChoice adds two to one chosen ability and one to another
	BonusKindChoice BonusKind = "choice"
)

// ParseBonusKind reads a bonus kind. An empty string means choice.
func ParseBonusKind(s string) (BonusKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(BonusKindChoice):
		return BonusKindChoice, nil
	case string(BonusKindFlat):
		return BonusKindFlat, nil
	default:
		return "", errors.InvalidArgumentf("unknown bonus kind %q", s)
	}
}

// Race is reference data for a playable race
type Race struct {
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Speed     int       `json:"speed"`
	BonusKind BonusKind `json:"bonus_kind"`
}

// Occupation is reference data for a class
type Occupation struct {
	Name       string `json:"name"`
	HPPerLevel int    `json:"hp_per_level"`
}

// Catalog resolves reference data by name
type Catalog interface {
	LookupRace(name string) (*Race, bool)
	LookupOccupation(name string) (*Occupation, bool)
}
