package service

import (
	"context"

	"gateway/internal/domain/entity"
)

// ProviderTokens are the credentials returned by an authorization code exchange.
type ProviderTokens struct {
	AccessToken  string
	RefreshToken *string // nil when the provider issued none
}

// Profile is the provider's view of the signed-in user.
type Profile struct {
	ExternalID  string  // Provider-scoped stable ID
	Email       *string // Required to complete a login
	SecondaryID *string // Required to complete a login (Slack ID for hack_club)
	DisplayName *string
}

// OAuthClient talks to the upstream identity provider.
// Implementations are chosen once at startup; callers never branch on the variant.
type OAuthClient interface {
	// AuthURL builds the provider authorization URL carrying state.
	AuthURL(state string) string

	// ExchangeCode performs the authorization-code grant. Failures wrap errors.ErrExchangeFailed.
	ExchangeCode(ctx context.Context, code string) (*ProviderTokens, error)

	// FetchProfile reads the profile of the token owner.
	// A non-success status yields *errors.ProfileFetchError.
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)

	// Provider returns the provider this client talks to.
	Provider() entity.ProviderType
}
