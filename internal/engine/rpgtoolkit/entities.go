package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

// Entity types reported to the toolkit
const (
	EntityTypeSession   = "creation_session"
	EntityTypeCharacter = "character"
)

// SessionEntity wraps chargen.Session to implement core.Entity interface
type SessionEntity struct {
	*chargen.Session
}

// GetID returns the session's ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return EntityTypeSession
}

// CharacterEntity wraps chargen.Character to implement core.Entity interface
type CharacterEntity struct {
	*chargen.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// WrapSession converts a chargen.Session to a core.Entity
func WrapSession(session *chargen.Session) core.Entity {
	return &SessionEntity{Session: session}
}

// WrapCharacter converts a chargen.Character to a core.Entity
func WrapCharacter(character *chargen.Character) core.Entity {
	return &CharacterEntity{Character: character}
}
