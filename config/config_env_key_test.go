package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"hackClub": map[string]any{
			"clientSecret": "",
			"callbackUrl":  "",
		},
		"secretKey": map[string]any{
			"access":    "",
			"masterKey": "",
		},
		"auth": map[string]any{
			"refreshTokenTTL": "720h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HACKCLUB_CLIENTSECRET", want: "hackClub.clientSecret"},
		{envKey: "HACKCLUB_CALLBACKURL", want: "hackClub.callbackUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_MASTERKEY", want: "secretKey.masterKey"},
		{envKey: "AUTH_REFRESHTOKENTTL", want: "auth.refreshTokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
