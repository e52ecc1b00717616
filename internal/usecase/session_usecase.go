package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// IssueSession signs an access token and persists a new refresh token for the user.
	IssueSession(ctx context.Context, userID uuid.UUID) (*TokenPair, error)

	// IssueRefreshToken persists a new refresh token and returns its raw value.
	IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// Rotate redeems a refresh token exactly once and returns its successor session.
	Rotate(ctx context.Context, presented string) (*TokenPair, error)

	// Revoke deletes the refresh token if it exists. Unknown tokens are not an error.
	Revoke(ctx context.Context, presented string) error

	// RevokeAll ends every session of the user.
	RevokeAll(ctx context.Context, userID uuid.UUID) error

	// Authenticate returns the user an access token was issued to.
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)
}
