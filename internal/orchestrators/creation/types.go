package creation

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/export"
)

//go:generate mockgen -destination=mock/mock_service.go -package=creationmock github.com/KirkDiggler/rpg-chargen/internal/orchestrators/creation Service

// Service defines the character creation orchestrator
type Service interface {
	// Reference data
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListOccupations(ctx context.Context, input *ListOccupationsInput) (*ListOccupationsOutput, error)

	// Session lifecycle
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	AssignAbilityScore(ctx context.Context, input *AssignAbilityScoreInput) (*AssignAbilityScoreOutput, error)
	UnassignAbilityScore(ctx context.Context, input *UnassignAbilityScoreInput) (*UnassignAbilityScoreOutput, error)
	ApplyRacialBonus(ctx context.Context, input *ApplyRacialBonusInput) (*ApplyRacialBonusOutput, error)

	// Characters
	FinalizeCharacter(ctx context.Context, input *FinalizeCharacterInput) (*FinalizeCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
}

// ListRacesInput requests the race table
type ListRacesInput struct{}

// ListRacesOutput contains races in load order
type ListRacesOutput struct {
	Races []chargen.Race
}

// ListOccupationsInput requests the occupation table
type ListOccupationsInput struct{}

// ListOccupationsOutput contains occupations in load order
type ListOccupationsOutput struct {
	Occupations []chargen.Occupation
}

// CreateSessionInput starts a new creation flow
type CreateSessionInput struct {
	PlayerID string
}

// CreateSessionOutput contains the new session with its first pool rolled
type CreateSessionOutput struct {
	Session *chargen.Session
}

// GetSessionInput identifies a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session
type GetSessionOutput struct {
	Session *chargen.Session
}

// RollAbilityScoresInput replaces the pool of a session
type RollAbilityScoresInput struct {
	SessionID string
}

// RollAbilityScoresOutput contains the session after the re-roll
type RollAbilityScoresOutput struct {
	Session *chargen.Session
}

// AssignAbilityScoreInput places a pool value in a slot
type AssignAbilityScoreInput struct {
	SessionID string
	Ability   chargen.Ability
	Value     int
}

// AssignAbilityScoreOutput contains the updated session
type AssignAbilityScoreOutput struct {
	Session *chargen.Session
}

// UnassignAbilityScoreInput empties a slot
type UnassignAbilityScoreInput struct {
	SessionID string
	Ability   chargen.Ability
}

// UnassignAbilityScoreOutput contains the updated session
type UnassignAbilityScoreOutput struct {
	Session *chargen.Session
}

// ApplyRacialBonusInput applies the bonus of a race. Selection is required
// for choice races and ignored for flat ones.
type ApplyRacialBonusInput struct {
	SessionID string
	RaceName  string
	Selection *chargen.BonusSelection
}

// ApplyRacialBonusOutput contains the updated session
type ApplyRacialBonusOutput struct {
	Session *chargen.Session
}

// FinalizeCharacterInput derives and stores a character from a session
type FinalizeCharacterInput struct {
	SessionID      string
	Name           string
	PlayerName     string
	RaceName       string
	OccupationName string
	Level          int
}

// FinalizeCharacterOutput contains the stored character
type FinalizeCharacterOutput struct {
	Character      *chargen.Character
	SessionDeleted bool
}

// GetCharacterInput identifies a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput contains the character
type GetCharacterOutput struct {
	Character *chargen.Character
}

// ListCharactersInput selects a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput contains the characters
type ListCharactersOutput struct {
	Characters []*chargen.Character
}

// DeleteCharacterInput identifies a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput is empty on success
type DeleteCharacterOutput struct{}

// ExportCharacterInput selects a character and a document format
type ExportCharacterInput struct {
	CharacterID string
	Format      export.Format
}

// ExportCharacterOutput contains the rendered document
type ExportCharacterOutput struct {
	Document *export.Document
}
