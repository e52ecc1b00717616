package hackclub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"gateway/config"
	"gateway/internal/domain/entity"
	domainerrors "gateway/internal/domain/errors"
	"gateway/internal/domain/service"
	"gateway/internal/errors"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4 << 10

// OAuthClient handles Hack Club Auth infrastructure operations
type OAuthClient struct {
	oauth      *oauth2.Config
	profileURL string
	httpClient *http.Client
}

// NewOAuthClient creates a live client. Every upstream call is bounded by cfg.Timeout and never retried.
func NewOAuthClient(cfg *config.HackClubConfig) *OAuthClient {
	return &OAuthClient{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{cfg.Scope},
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.Host + authorizePath,
				TokenURL:  cfg.Host + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		profileURL: cfg.Host + profilePath,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthURL builds the authorization URL with client id, redirect URI, scope and state.
func (c *OAuthClient) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Provider returns the OAuth provider type
func (c *OAuthClient) Provider() entity.ProviderType {
	return entity.ProviderHackClub
}

// ExchangeCode exchanges an authorization code for provider tokens
func (c *OAuthClient) ExchangeCode(ctx context.Context, code string) (*service.ProviderTokens, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, errors.Wrapf(domainerrors.ErrExchangeFailed, "token endpoint returned %d: %s",
				retrieveErr.Response.StatusCode, truncate(retrieveErr.Body))
		}

		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, err.Error())
	}

	if token.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrExchangeFailed, "token response carried no access token")
	}

	tokens := &service.ProviderTokens{AccessToken: token.AccessToken}
	if token.RefreshToken != "" {
		refresh := token.RefreshToken
		tokens.RefreshToken = &refresh
	}

	return tokens, nil
}

type profileResponse struct {
	ID          string  `json:"id"`
	Email       *string `json:"email"`
	SlackID     *string `json:"slack_id"`
	DisplayName *string `json:"display_name"`
}

// FetchProfile retrieves the profile of the token owner
func (c *OAuthClient) FetchProfile(ctx context.Context, accessToken string) (*service.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed, err.Error())
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &domainerrors.ProfileFetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed, "failed to decode profile response")
	}

	if profile.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrProfileFetchFailed, "profile response carried no id")
	}

	return &service.Profile{
		ExternalID:  profile.ID,
		Email:       nonEmpty(profile.Email),
		SecondaryID: nonEmpty(profile.SlackID),
		DisplayName: nonEmpty(profile.DisplayName),
	}, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return string(body)
}
