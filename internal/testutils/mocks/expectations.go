// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-chargen/internal/repositories/character/mock"
	sessionrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session"
	sessionmock "github.com/KirkDiggler/rpg-chargen/internal/repositories/creation_session/mock"
)

// Now is the time stamped by the simulated repositories
var Now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// ExpectSessionGet sets up a mock expectation for loading a session. The
// returned session is a copy so the caller's fixture stays untouched.
func ExpectSessionGet(
	ctx context.Context, mockRepo *sessionmock.MockRepository,
	sessionID string, session *chargen.Session, err error,
) *gomock.Call {
	var out *sessionrepo.GetOutput
	if session != nil {
		out = &sessionrepo.GetOutput{Session: session.Clone()}
	}
	return mockRepo.EXPECT().
		Get(ctx, sessionrepo.GetInput{ID: sessionID}).
		Return(out, err)
}

// ExpectSessionCreate sets up a mock expectation for storing a new session
func ExpectSessionCreate(ctx context.Context, mockRepo *sessionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.CreateInput) (*sessionrepo.CreateOutput, error) {
			stored := input.Session.Clone()
			stored.CreatedAt = Now
			stored.UpdatedAt = Now
			stored.ExpiresAt = Now.Add(input.TTL)
			return &sessionrepo.CreateOutput{Session: stored}, nil
		})
}

// ExpectSessionUpdate sets up a mock expectation for replacing a session
func ExpectSessionUpdate(ctx context.Context, mockRepo *sessionmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessionrepo.UpdateInput) (*sessionrepo.UpdateOutput, error) {
			stored := input.Session.Clone()
			stored.UpdatedAt = Now
			return &sessionrepo.UpdateOutput{Session: stored}, nil
		})
}

// ExpectSessionDelete sets up a mock expectation for deleting a session
func ExpectSessionDelete(ctx context.Context, mockRepo *sessionmock.MockRepository, sessionID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Delete(ctx, sessionrepo.DeleteInput{ID: sessionID}).
		Return(&sessionrepo.DeleteOutput{}, err)
}

// ExpectCharacterCreate sets up a mock expectation for storing a character
func ExpectCharacterCreate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			stored := *input.Character
			if stored.CreatedAt.IsZero() {
				stored.CreatedAt = Now
			}
			return &characterrepo.CreateOutput{Character: &stored}, nil
		})
}

// ExpectCharacterGet sets up a mock expectation for loading a character
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	characterID string, character *chargen.Character, err error,
) *gomock.Call {
	var out *characterrepo.GetOutput
	if character != nil {
		out = &characterrepo.GetOutput{Character: character}
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: characterID}).
		Return(out, err)
}
