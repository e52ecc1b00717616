package hackclub

import (
	"context"
	"net/url"
	"testing"

	"gateway/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_SelectsVariant(t *testing.T) {
	cfg := &config.Config{HackClub: newTestConfig("https://auth.hackclub.com")}

	_, isLive := NewClient(cfg).(*OAuthClient)
	assert.True(t, isLive)

	cfg.HackClub.Mock = true
	_, isMock := NewClient(cfg).(*MockClient)
	assert.True(t, isMock)
}

func TestMockClient(t *testing.T) {
	client := NewMockClient("http://localhost:8000/oauth/callback")

	parsed, err := url.Parse(client.AuthURL("s/t+="))
	require.NoError(t, err)
	assert.Equal(t, "/oauth/callback", parsed.Path)
	assert.Equal(t, MockCode, parsed.Query().Get("code"))
	assert.Equal(t, "s/t+=", parsed.Query().Get("state"))

	tokens, err := client.ExchangeCode(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, MockAccessToken, tokens.AccessToken)
	require.NotNil(t, tokens.RefreshToken)
	assert.Equal(t, MockRefreshToken, *tokens.RefreshToken)

	profile, err := client.FetchProfile(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, MockExternalID, profile.ExternalID)
	assert.Equal(t, MockEmail, *profile.Email)
	assert.Equal(t, MockSlackID, *profile.SecondaryID)
	assert.Equal(t, MockDisplayName, *profile.DisplayName)
}
