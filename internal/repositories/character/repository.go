// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-chargen/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID, or for the same session, exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySessionID retrieves the character finalized from a session
	// Returns errors.NotFound if the session has not produced a character
	GetBySessionID(ctx context.Context, input GetBySessionIDInput) (*GetOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *chargen.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *chargen.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetBySessionIDInput defines the input for looking a character up by session
type GetBySessionIDInput struct {
	SessionID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *chargen.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing characters by player
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing characters by player
type ListByPlayerIDOutput struct {
	Characters []*chargen.Character
}
