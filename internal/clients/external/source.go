package external

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/reference"
)

// Source loads reference tables from the D&D 5e SRD API
type Source struct {
	client Client
}

var _ reference.Source = (*Source)(nil)

// NewSource wraps an external client as a reference source
func NewSource(client Client) (*Source, error) {
	if client == nil {
		return nil, errors.InvalidArgument("external client is required")
	}
	return &Source{client: client}, nil
}

// Name identifies the source
func (s *Source) Name() string {
	return "dnd5e"
}

// Load fetches every race and class. Class hit dice become hit points per level.
func (s *Source) Load(ctx context.Context) (*reference.Tables, error) {
	raceData, err := s.client.ListAvailableRaces(ctx)
	if err != nil {
		return nil, err
	}
	classData, err := s.client.ListAvailableClasses(ctx)
	if err != nil {
		return nil, err
	}

	races := make([]chargen.Race, 0, len(raceData))
	for _, r := range raceData {
		if r == nil {
			continue
		}
		races = append(races, chargen.Race{
			Name:      r.Name,
			Size:      r.Size,
			Speed:     r.Speed,
			BonusKind: BonusKindFor(r.AbilityBonuses),
		})
	}

	occupations := make([]chargen.Occupation, 0, len(classData))
	for _, c := range classData {
		if c == nil {
			continue
		}
		occupations = append(occupations, chargen.Occupation{
			Name:       c.Name,
			HPPerLevel: c.HitDie,
		})
	}

	return reference.NewTables(s.Name(), races, occupations)
}

// BonusKindFor classifies SRD ability bonuses. Exactly +1 on every ability
// is the flat bonus; anything else is a player choice.
func BonusKindFor(bonuses map[string]int) chargen.BonusKind {
	if len(bonuses) != chargen.AbilityCount {
		return chargen.BonusKindChoice
	}
	for _, a := range chargen.Abilities {
		if bonuses[a.ShortName()] != chargen.FlatBonus {
			return chargen.BonusKindChoice
		}
	}
	return chargen.BonusKindFlat
}
