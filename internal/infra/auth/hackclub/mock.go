package hackclub

import (
	"context"
	"net/url"

	"gateway/internal/domain/entity"
	"gateway/internal/domain/service"
)

// Fixed values returned by MockClient.
const (
	MockCode         = "MOCKCODE"
	MockAccessToken  = "mock_access_token"
	MockRefreshToken = "mock_refresh"
	MockExternalID   = "mock-id"
	MockEmail        = "dev@example.com"
	MockSlackID      = "DEVSLACK"
	MockDisplayName  = "Dev User"
)

// MockClient is a deterministic offline stand-in for Hack Club Auth.
// It never performs network I/O.
type MockClient struct {
	callbackURL string
}

// NewMockClient returns a client whose authorization URL points straight back at callbackURL.
func NewMockClient(callbackURL string) *MockClient {
	return &MockClient{callbackURL: callbackURL}
}

// AuthURL returns {callbackURL}?code=MOCKCODE&state={state}.
func (c *MockClient) AuthURL(state string) string {
	params := url.Values{}
	params.Set("code", MockCode)
	params.Set("state", state)

	return c.callbackURL + "?" + params.Encode()
}

// Provider returns the OAuth provider type
func (c *MockClient) Provider() entity.ProviderType {
	return entity.ProviderHackClub
}

// ExchangeCode accepts any code.
func (c *MockClient) ExchangeCode(_ context.Context, _ string) (*service.ProviderTokens, error) {
	refresh := MockRefreshToken

	return &service.ProviderTokens{
		AccessToken:  MockAccessToken,
		RefreshToken: &refresh,
	}, nil
}

// FetchProfile returns the fixed developer profile.
func (c *MockClient) FetchProfile(_ context.Context, _ string) (*service.Profile, error) {
	email, slackID, displayName := MockEmail, MockSlackID, MockDisplayName

	return &service.Profile{
		ExternalID:  MockExternalID,
		Email:       &email,
		SecondaryID: &slackID,
		DisplayName: &displayName,
	}, nil
}
