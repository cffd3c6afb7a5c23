package chargen

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// DefaultMaxLevel is the highest level a character may be created at
const DefaultMaxLevel = 20

// Character is the finished, immutable result of a creation session
type Character struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	PlayerID  string    `json:"player_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Name       string `json:"name"`
	PlayerName string `json:"player_name"`
	Race       string `json:"race"`
	Occupation string `json:"occupation"`
	Level      int    `json:"level"`

	Scores    [AbilityCount]int `json:"scores"`
	Modifiers [AbilityCount]int `json:"modifiers"`

	Size      string `json:"size"`
	Speed     int    `json:"speed"`
	MaxHP     int    `json:"max_hp"`
	CurrentHP int    `json:"current_hp"`
	TempHP    int    `json:"temp_hp"`
}

// Modifier returns the ability modifier for score: floor((s-10)/2) at 10 and
// above, -ceil((10-s)/2) below.
func Modifier(score int) int {
	if score >= 10 {
		return (score - 10) / 2
	}
	return -((10 - score + 1) / 2)
}

// DeriveInput carries the descriptive fields for a new character
type DeriveInput struct {
	Name           string
	PlayerName     string
	RaceName       string
	OccupationName string
	Level          int
	// MaxLevel defaults to DefaultMaxLevel when zero
	MaxLevel int
}

// CheckReady reports whether the session can produce a character
func (s *Session) CheckReady() error {
	if !s.IsComplete() {
		return errors.Wrap(ErrIncompleteAssignment, "character is not ready: assignment incomplete").
			WithReason(ReasonCharacterNotReady).
			WithMeta("missing", abilityNamesOf(s.Assignment.Missing()))
	}
	if !s.BonusIsApplied() {
		return errors.Wrap(ErrCharacterNotReady, "character is not ready: racial bonus not applied")
	}
	return nil
}

// Derive produces a character from a finished session. Field problems are
// reported together as a validation error.
func Derive(session *Session, catalog Catalog, input DeriveInput) (*Character, error) {
	if session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if catalog == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}
	if err := session.CheckReady(); err != nil {
		return nil, err
	}

	maxLevel := input.MaxLevel
	if maxLevel <= 0 {
		maxLevel = DefaultMaxLevel
	}

	name := strings.TrimSpace(input.Name)
	playerName := strings.TrimSpace(input.PlayerName)
	raceName := strings.TrimSpace(input.RaceName)
	occupationName := strings.TrimSpace(input.OccupationName)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateRequired("player_name", playerName, vb)
	errors.ValidateRange("level", input.Level, 1, maxLevel, vb)

	var race *Race
	if raceName == "" {
		vb.RequiredField("race")
	} else if r, ok := catalog.LookupRace(raceName); !ok {
		vb.Fieldf("race", "unknown race %q", raceName)
	} else if session.BonusRace != "" && !strings.EqualFold(session.BonusRace, r.Name) {
		vb.Fieldf("race", "racial bonus was applied for %s", session.BonusRace)
	} else {
		race = r
	}

	var occupation *Occupation
	if occupationName == "" {
		vb.RequiredField("occupation")
	} else if o, ok := catalog.LookupOccupation(occupationName); !ok {
		vb.Fieldf("occupation", "unknown occupation %q", occupationName)
	} else {
		occupation = o
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &Character{
		SessionID:  session.ID,
		PlayerID:   session.PlayerID,
		Name:       name,
		PlayerName: playerName,
		Race:       race.Name,
		Occupation: occupation.Name,
		Level:      input.Level,
		Scores:     session.Assignment,
		Size:       race.Size,
		Speed:      race.Speed,
		MaxHP:      occupation.HPPerLevel * input.Level,
	}
	for _, a := range Abilities {
		c.Modifiers[a] = Modifier(c.Scores[a])
	}
	c.CurrentHP = c.MaxHP
	c.TempHP = 0

	return c, nil
}

// Score returns the final score for ability a
func (c *Character) Score(a Ability) int {
	if !a.Valid() {
		return 0
	}
	return c.Scores[a]
}

// Modifier returns the modifier for ability a
func (c *Character) Modifier(a Ability) int {
	if !a.Valid() {
		return 0
	}
	return c.Modifiers[a]
}

// Check verifies the invariants every derived character holds. Stored
// records that fail it were written by something other than Derive.
func (c *Character) Check() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateRequired("player_name", c.PlayerName, vb)
	if c.Level < 1 {
		vb.Field("level", "must be positive")
	}
	for _, a := range Abilities {
		score := c.Scores[a]
		if score < MinScore || score > MaxScore+ChoicePrimary {
			vb.Fieldf("scores", "%s is %d, outside %d-%d", a, score, MinScore, MaxScore+ChoicePrimary)
			continue
		}
		if c.Modifiers[a] != Modifier(score) {
			vb.Fieldf("modifiers", "%s is %+d, want %+d", a, c.Modifiers[a], Modifier(score))
		}
	}
	if c.MaxHP < 1 {
		vb.Field("max_hp", "must be positive")
	}
	if c.CurrentHP != c.MaxHP {
		vb.Fieldf("current_hp", "is %d, want %d", c.CurrentHP, c.MaxHP)
	}
	if c.TempHP != 0 {
		vb.Field("temp_hp", "must be zero")
	}

	return vb.Build()
}
