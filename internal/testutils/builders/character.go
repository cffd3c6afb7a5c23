package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

// CharacterBuilder provides a fluent interface for building test characters.
// Modifiers and hit points are kept consistent with the scores, occupation
// and level.
type CharacterBuilder struct {
	character  *chargen.Character
	hpPerLevel int
}

// NewCharacterBuilder starts from testutils.CreateTestCharacter
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character:  testutils.CreateTestCharacter("sess-test-123"),
		hpPerLevel: testutils.TestFighter().HPPerLevel,
	}
}

// WithCreatedAt sets the creation time. Left zero, repositories stamp it.
func (b *CharacterBuilder) WithCreatedAt(t time.Time) *CharacterBuilder {
	b.character.CreatedAt = t
	return b
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithSessionID sets the originating session
func (b *CharacterBuilder) WithSessionID(sessionID string) *CharacterBuilder {
	b.character.SessionID = sessionID
	return b
}

// WithPlayerID sets the owning player
func (b *CharacterBuilder) WithPlayerID(playerID string) *CharacterBuilder {
	b.character.PlayerID = playerID
	return b
}

// WithName sets the character and player names
func (b *CharacterBuilder) WithName(name, playerName string) *CharacterBuilder {
	b.character.Name = name
	b.character.PlayerName = playerName
	return b
}

// WithRace copies the race name, size and speed
func (b *CharacterBuilder) WithRace(race *chargen.Race) *CharacterBuilder {
	b.character.Race = race.Name
	b.character.Size = race.Size
	b.character.Speed = race.Speed
	return b
}

// WithOccupation sets the occupation used for hit points
func (b *CharacterBuilder) WithOccupation(occupation *chargen.Occupation) *CharacterBuilder {
	b.character.Occupation = occupation.Name
	b.hpPerLevel = occupation.HPPerLevel
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithScores sets the final scores in slot order
func (b *CharacterBuilder) WithScores(scores [chargen.AbilityCount]int) *CharacterBuilder {
	b.character.Scores = scores
	return b
}

// Build returns the character with derived fields recomputed
func (b *CharacterBuilder) Build() *chargen.Character {
	c := *b.character
	for _, a := range chargen.Abilities {
		c.Modifiers[a] = chargen.Modifier(c.Scores[a])
	}
	c.MaxHP = b.hpPerLevel * c.Level
	c.CurrentHP = c.MaxHP
	c.TempHP = 0
	return &c
}
