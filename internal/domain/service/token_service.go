package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by session access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting session credentials.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken signs an access token for userID expiring ttl from now.
	IssueAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// VerifyAccessToken returns the subject of a valid access token.
	// Rejections are *errors.AuthError values carrying the internal reason.
	VerifyAccessToken(tokenString string) (uuid.UUID, error)

	// NewRefreshToken returns a fresh opaque refresh token and the hash to persist for it.
	NewRefreshToken() (raw string, hash string, err error)

	// HashToken returns the storage hash of a presented refresh token.
	HashToken(raw string) string
}
