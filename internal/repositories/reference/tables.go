// Package reference loads and serves the race and occupation tables used
// during character creation
package reference

import (
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Tables is an immutable snapshot of the reference data
type Tables struct {
	Source      string
	races       []chargen.Race
	occupations []chargen.Occupation
	raceIndex   map[string]int
	occIndex    map[string]int
}

var _ chargen.Catalog = (*Tables)(nil)

// NewTables validates the rows and indexes them by case-insensitive name
func NewTables(source string, races []chargen.Race, occupations []chargen.Occupation) (*Tables, error) {
	t := &Tables{
		Source:      source,
		races:       make([]chargen.Race, 0, len(races)),
		occupations: make([]chargen.Occupation, 0, len(occupations)),
		raceIndex:   make(map[string]int, len(races)),
		occIndex:    make(map[string]int, len(occupations)),
	}

	vb := errors.NewValidationBuilder()
	if len(races) == 0 {
		vb.Field("races", "at least one race is required")
	}
	if len(occupations) == 0 {
		vb.Field("occupations", "at least one occupation is required")
	}

	for i, r := range races {
		r.Name = strings.TrimSpace(r.Name)
		field := "races[" + r.Name + "]"
		switch {
		case r.Name == "":
			vb.Fieldf("races", "row %d has no name", i+1)
			continue
		case r.Speed <= 0:
			vb.Fieldf(field, "speed must be positive, got %d", r.Speed)
		case r.BonusKind != chargen.BonusKindFlat && r.BonusKind != chargen.BonusKindChoice:
			vb.Fieldf(field, "unknown bonus kind %q", r.BonusKind)
		}
		key := nameKey(r.Name)
		if _, dup := t.raceIndex[key]; dup {
			vb.Field(field, "duplicate race")
			continue
		}
		t.raceIndex[key] = len(t.races)
		t.races = append(t.races, r)
	}

	for i, o := range occupations {
		o.Name = strings.TrimSpace(o.Name)
		field := "occupations[" + o.Name + "]"
		if o.Name == "" {
			vb.Fieldf("occupations", "row %d has no name", i+1)
			continue
		}
		if o.HPPerLevel <= 0 {
			vb.Fieldf(field, "hp per level must be positive, got %d", o.HPPerLevel)
		}
		key := nameKey(o.Name)
		if _, dup := t.occIndex[key]; dup {
			vb.Field(field, "duplicate occupation")
			continue
		}
		t.occIndex[key] = len(t.occupations)
		t.occupations = append(t.occupations, o)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return t, nil
}

// LookupRace finds a race by name, ignoring case and surrounding space
func (t *Tables) LookupRace(name string) (*chargen.Race, bool) {
	i, ok := t.raceIndex[nameKey(name)]
	if !ok {
		return nil, false
	}
	r := t.races[i]
	return &r, true
}

// LookupOccupation finds an occupation by name, ignoring case and surrounding space
func (t *Tables) LookupOccupation(name string) (*chargen.Occupation, bool) {
	i, ok := t.occIndex[nameKey(name)]
	if !ok {
		return nil, false
	}
	o := t.occupations[i]
	return &o, true
}

// Races returns the races in load order
func (t *Tables) Races() []chargen.Race {
	return append([]chargen.Race(nil), t.races...)
}

// Occupations returns the occupations in load order
func (t *Tables) Occupations() []chargen.Occupation {
	return append([]chargen.Occupation(nil), t.occupations...)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
