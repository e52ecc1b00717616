package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names an upstream identity provider.
type ProviderType string

const (
	// ProviderHackClub is the only upstream provider the gateway federates with.
	ProviderHackClub ProviderType = "hack_club"
)

func (p ProviderType) String() string {
	return string(p)
}

// Identity links an account at an external provider to a local User.
// (Provider, ExternalID) is unique.
type Identity struct {
	ID          uuid.UUID    // The unique ID for this identity record.
	UserID      uuid.UUID    // The local user this identity resolves to.
	Provider    ProviderType // The upstream provider, e.g. "hack_club".
	ExternalID  string       // The user's stable ID at the provider.
	SecondaryID *string      // Provider specific secondary identifier (the Slack ID for hack_club).
	CreatedAt   time.Time    // Timestamp of when the identity was first linked.
}

// ProviderTokenRecord holds provider tokens encrypted at rest.
// A new record is appended on every successful login; plaintext is never stored.
type ProviderTokenRecord struct {
	ID           uuid.UUID
	IdentityID   uuid.UUID
	EncAccess    []byte
	NonceAccess  []byte
	EncRefresh   []byte // nil when the provider issued no refresh token
	NonceRefresh []byte
	CreatedAt    time.Time
}

// HasRefresh reports whether the record carries an encrypted provider refresh token.
func (r *ProviderTokenRecord) HasRefresh() bool {
	return len(r.EncRefresh) > 0 && len(r.NonceRefresh) > 0
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsExpired reports whether the token is no longer redeemable at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
