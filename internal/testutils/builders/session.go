// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

// SessionBuilder provides a fluent interface for building test sessions.
// Steps run in the order they are added, so an assignment added before the
// bonus is in place when the bonus is applied.
type SessionBuilder struct {
	session *chargen.Session
	steps   []func(*chargen.Session) error
}

// NewSessionBuilder creates a builder for a fresh session rolled with
// testutils.TestPool
func NewSessionBuilder() *SessionBuilder {
	s := testutils.CreateTestSession("sess-test-123")
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.CreatedAt = now
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(24 * time.Hour)
	return &SessionBuilder{session: s}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithPlayerID sets the player ID
func (b *SessionBuilder) WithPlayerID(playerID string) *SessionBuilder {
	b.session.PlayerID = playerID
	return b
}

// WithPool rerolls the session so its pool is exactly scores
func (b *SessionBuilder) WithPool(scores ...int) *SessionBuilder {
	b.steps = append(b.steps, func(s *chargen.Session) error {
		s.Reroll(testutils.RollsFor(scores...))
		return nil
	})
	return b
}

// WithAssignment places value in slot
func (b *SessionBuilder) WithAssignment(slot chargen.Ability, value int) *SessionBuilder {
	b.steps = append(b.steps, func(s *chargen.Session) error {
		return s.Assign(slot, value)
	})
	return b
}

// WithPoolAssignedInOrder places the pool into the slots in sheet order
func (b *SessionBuilder) WithPoolAssignedInOrder() *SessionBuilder {
	b.steps = append(b.steps, func(s *chargen.Session) error {
		for i, v := range s.Pool {
			if err := s.Assign(chargen.Ability(i), v); err != nil {
				return err
			}
		}
		return nil
	})
	return b
}

// WithRacialBonus applies race's bonus with an optional selection
func (b *SessionBuilder) WithRacialBonus(race *chargen.Race, selection *chargen.BonusSelection) *SessionBuilder {
	b.steps = append(b.steps, func(s *chargen.Session) error {
		return s.ApplyRacialBonus(race, selection)
	})
	return b
}

// Build runs every step and returns the session. A failing step panics since
// the fixture itself is wrong.
func (b *SessionBuilder) Build() *chargen.Session {
	s := b.session.Clone()
	for _, step := range b.steps {
		if err := step(s); err != nil {
			panic(err)
		}
	}
	return s
}
