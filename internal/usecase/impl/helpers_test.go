package impl

import (
	"io"
	"log/slog"
	"time"

	"gateway/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 30 * 24 * time.Hour,
			LinkPolicy:      config.LinkPolicyEmail,
		},
		Retention: &config.RetentionConfig{
			SweepInterval:             time.Hour,
			ProviderTokensPerIdentity: 5,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
