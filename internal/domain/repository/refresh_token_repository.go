package repository

import (
	"context"
	"time"

	"gateway/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no redeemable refresh token matches the hash.
// Absent and expired tokens are reported the same way.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// This supports multi-device login and remote logout functionality.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// ConsumeRefreshToken atomically deletes the token with the given hash if it has not expired at now
	// and returns the deleted record. Of several concurrent callers with the same hash, exactly one succeeds.
	ConsumeRefreshToken(ctx context.Context, tokenHash string, now time.Time) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash. Deleting a missing token is not an error.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	// This is useful for "logout from all devices" functionality.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes every token whose expiry is not after now and returns the number removed.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
