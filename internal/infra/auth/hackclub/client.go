// Package hackclub talks to Hack Club Auth, the upstream identity provider.
package hackclub

import (
	"gateway/config"
	"gateway/internal/domain/service"
)

const (
	authorizePath = "/oauth/authorize"
	tokenPath     = "/oauth/token"
	profilePath   = "/api/v1/me"
)

// NewClient returns the live client, or the offline mock when hackClub.mock is set.
func NewClient(cfg *config.Config) service.OAuthClient {
	if cfg.HackClub.Mock {
		return NewMockClient(cfg.HackClub.CallbackURL)
	}

	return NewOAuthClient(cfg.HackClub)
}
