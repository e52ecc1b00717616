package hackclub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gateway/config"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(host string) *config.HackClubConfig {
	return &config.HackClubConfig{
		Host:         host,
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		CallbackURL:  "http://localhost:8000/oauth/callback",
		Scope:        "identity",
		Timeout:      2 * time.Second,
	}
}

func ptr(s string) *string { return &s }

func TestOAuthClient_AuthURL(t *testing.T) {
	client := NewOAuthClient(newTestConfig("https://auth.hackclub.com"))

	raw := client.AuthURL("abc+/=")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "auth.hackclub.com", parsed.Host)
	assert.Equal(t, "/oauth/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/oauth/callback", query.Get("redirect_uri"))
	assert.Equal(t, "identity", query.Get("scope"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "abc+/=", query.Get("state"))
}

func TestOAuthClient_ExchangeCode(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantAccess  string
		wantRefresh *string
		wantErr     bool
	}{
		{
			name:        "access and refresh",
			status:      http.StatusOK,
			body:        `{"access_token":"at","refresh_token":"rt","token_type":"Bearer"}`,
			wantAccess:  "at",
			wantRefresh: ptr("rt"),
		},
		{
			name:       "access only",
			status:     http.StatusOK,
			body:       `{"access_token":"at","token_type":"Bearer"}`,
			wantAccess: "at",
		},
		{
			name:    "rejected code",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant"}`,
			wantErr: true,
		},
		{
			name:    "unparsable body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: true,
		},
		{
			name:    "missing access token",
			status:  http.StatusOK,
			body:    `{"token_type":"Bearer"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/oauth/token", r.URL.Path)
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
				assert.Equal(t, "the-code", r.PostForm.Get("code"))
				assert.Equal(t, "test_client_id", r.PostForm.Get("client_id"))
				assert.Equal(t, "test_secret", r.PostForm.Get("client_secret"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewOAuthClient(newTestConfig(server.URL))
			tokens, err := client.ExchangeCode(context.Background(), "the-code")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrExchangeFailed))
				assert.Nil(t, tokens)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, tokens.AccessToken)
			assert.Equal(t, tt.wantRefresh, tokens.RefreshToken)
		})
	}
}

func TestOAuthClient_ExchangeCode_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	cfg := newTestConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewOAuthClient(cfg)

	_, err := client.ExchangeCode(context.Background(), "the-code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExchangeFailed))
}

func TestOAuthClient_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/me", r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"bad token"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           "ident!abc",
			"email":        "orpheus@hackclub.com",
			"slack_id":     "U123",
			"display_name": "Orpheus",
		})
	}))
	defer server.Close()

	client := NewOAuthClient(newTestConfig(server.URL))

	t.Run("success", func(t *testing.T) {
		profile, err := client.FetchProfile(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "ident!abc", profile.ExternalID)
		require.NotNil(t, profile.Email)
		assert.Equal(t, "orpheus@hackclub.com", *profile.Email)
		require.NotNil(t, profile.SecondaryID)
		assert.Equal(t, "U123", *profile.SecondaryID)
		require.NotNil(t, profile.DisplayName)
		assert.Equal(t, "Orpheus", *profile.DisplayName)
	})

	t.Run("non-success status carries status and body", func(t *testing.T) {
		_, err := client.FetchProfile(context.Background(), "bad-token")
		require.Error(t, err)

		fetchErr, ok := errors.AsType[*domainerrors.ProfileFetchError](err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, fetchErr.Status)
		assert.Contains(t, fetchErr.Body, "bad token")
		assert.True(t, errors.Is(err, domainerrors.ErrProfileFetchFailed))
	})
}

func TestOAuthClient_FetchProfile_MissingOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ident!xyz","email":null,"slack_id":""}`))
	}))
	defer server.Close()

	client := NewOAuthClient(newTestConfig(server.URL))

	profile, err := client.FetchProfile(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "ident!xyz", profile.ExternalID)
	assert.Nil(t, profile.Email)
	assert.Nil(t, profile.SecondaryID)
	assert.Nil(t, profile.DisplayName)
}

func TestOAuthClient_Provider(t *testing.T) {
	client := NewOAuthClient(newTestConfig("https://auth.hackclub.com"))
	assert.Equal(t, entity.ProviderHackClub, client.Provider())
}
