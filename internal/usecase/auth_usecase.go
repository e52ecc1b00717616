// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gateway/internal/domain/service"

	"github.com/google/uuid"
)

// TokenPair is a freshly issued session. The refresh token is shown to the caller exactly once.
type TokenPair struct {
	AccessToken  string `json:"jwt"`
	RefreshToken string `json:"refresh_token"`
}

// LoginRedirect is where to send the browser to start a login, and the state it carries.
type LoginRedirect struct {
	URL   string
	State string
}

// ResolvedIdentity is the local account a provider profile maps to.
type ResolvedIdentity struct {
	UserID      uuid.UUID
	IdentityID  uuid.UUID
	UserCreated bool
}

// AuthUsecase orchestrates the provider login flow.
type AuthUsecase interface {
	// BeginLogin generates a fresh state and the provider authorization URL embedding it.
	BeginLogin(ctx context.Context) (*LoginRedirect, error)

	// CompleteLogin exchanges the code, resolves the identity, vaults the provider tokens and issues a session.
	CompleteLogin(ctx context.Context, code string) (*TokenPair, error)
}

// IdentityResolver maps a provider profile to local user and identity records.
type IdentityResolver interface {
	ResolveAndLink(ctx context.Context, profile *service.Profile) (*ResolvedIdentity, error)
}
