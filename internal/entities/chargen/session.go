package chargen

import (
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// BonusState tracks whether the racial bonus has been applied to a session
type BonusState string

// Bonus states
const (
	BonusNotApplied BonusState = "not_applied"
	BonusApplied    BonusState = "applied"
)

// Session is one character-creation flow: a rolled pool, the assignment of
// that pool to ability slots and the racial bonus lifecycle.
type Session struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id,omitempty"`

	Rolls      []AbilityRoll `json:"rolls"`
	Pool       ScorePool     `json:"pool"`
	Assignment Assignment    `json:"assignment"`

	BonusState BonusState `json:"bonus_state"`
	// BonusRace is the race the bonus was applied for
	BonusRace string `json:"bonus_race,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession starts a session from a fresh set of rolls
func NewSession(id string, rolls []AbilityRoll) *Session {
	s := &Session{ID: id}
	s.Reroll(rolls)
	return s
}

// BonusIsApplied reports whether the assignment is frozen by the racial bonus
func (s *Session) BonusIsApplied() bool {
	return s.BonusState == BonusApplied
}

// IsComplete reports whether every slot holds a score
func (s *Session) IsComplete() bool {
	return s.Assignment.IsComplete()
}

// Assign places value in slot. The slot's previous value is released first. If
// every copy of value is already in use, the lowest-indexed other slot holding
// it is emptied so the newest placement wins.
func (s *Session) Assign(slot Ability, value int) error {
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown ability slot %d", int(slot))
	}
	if s.BonusIsApplied() {
		return errors.Wrapf(ErrBonusAlreadyApplied, "cannot assign %s after the racial bonus", slot)
	}

	available := s.Pool.Count(value)
	if available == 0 {
		return errors.Wrapf(ErrValueUnavailable, "%d is not in the score pool", value).
			WithMeta("value", value)
	}

	s.Assignment[slot] = 0
	if s.Assignment.Uses(value) >= available {
		for _, other := range Abilities {
			if s.Assignment[other] == value {
				s.Assignment[other] = 0
				break
			}
		}
	}
	s.Assignment[slot] = value

	return nil
}

// Unassign empties slot
func (s *Session) Unassign(slot Ability) error {
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown ability slot %d", int(slot))
	}
	if s.BonusIsApplied() {
		return errors.Wrapf(ErrBonusAlreadyApplied, "cannot clear %s after the racial bonus", slot)
	}
	s.Assignment[slot] = 0
	return nil
}

// Clear empties every slot and resets the racial bonus
func (s *Session) Clear() {
	s.Assignment = Assignment{}
	s.BonusState = BonusNotApplied
	s.BonusRace = ""
}

// Reroll replaces the pool wholesale and clears the assignment
func (s *Session) Reroll(rolls []AbilityRoll) {
	s.Rolls = make([]AbilityRoll, len(rolls))
	copy(s.Rolls, rolls)
	s.Pool = Totals(rolls)
	s.Clear()
}

// Remaining returns the pool values not yet placed in a slot, in pool order.
// Once the bonus is applied the whole pool counts as placed.
func (s *Session) Remaining() []int {
	if s.BonusIsApplied() {
		return []int{}
	}

	used := make(map[int]int)
	for _, v := range s.Assignment {
		if v != 0 {
			used[v]++
		}
	}

	remaining := make([]int, 0, len(s.Pool))
	for _, v := range s.Pool {
		if used[v] > 0 {
			used[v]--
			continue
		}
		remaining = append(remaining, v)
	}
	return remaining
}

// Clone returns a deep copy so callers can mutate without touching the original
func (s *Session) Clone() *Session {
	c := *s
	c.Rolls = make([]AbilityRoll, len(s.Rolls))
	for i, r := range s.Rolls {
		c.Rolls[i] = AbilityRoll{
			Dice:         append([]int(nil), r.Dice...),
			DroppedIndex: r.DroppedIndex,
			Total:        r.Total,
		}
	}
	c.Pool = append(ScorePool(nil), s.Pool...)
	return &c
}
