// Package creationsession provides repository interface and types for character creation sessions
package creationsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creationsessionmock github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session Repository

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *chargen.Session
	TTL     time.Duration // How long the session should live
}

// CreateOutput contains the stored session with timestamps filled in
type CreateOutput struct {
	Session *chargen.Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *chargen.Session
}

// UpdateInput contains the session to replace
type UpdateInput struct {
	Session *chargen.Session
}

// UpdateOutput contains the stored session
type UpdateOutput struct {
	Session *chargen.Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}

// Repository defines the interface for creation session storage operations
type Repository interface {
	// Create stores a new session with the specified TTL
	// Returns errors.InvalidArgument for a nil session or empty ID
	// Returns errors.AlreadyExists if a session with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	// Returns errors.NotFound if the session is missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session, keeping its expiry
	// Returns errors.NotFound if the session is missing or expired
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session
	// Returns errors.NotFound if the session does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
