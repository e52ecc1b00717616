package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = "signing-secret"
	cfg.SecretKey.MasterKey = "base64:YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXowMTIzNDU="
	cfg.HackClub = &HackClubConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		CallbackURL:  "http://localhost:8080/oauth/callback",
	}
	cfg.ApplyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HackClub = &HackClubConfig{Host: "https://auth.example.com/"}

	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "https://auth.example.com", cfg.HackClub.Host)
	assert.Equal(t, defaultHackClubScope, cfg.HackClub.Scope)
	assert.Equal(t, defaultHTTPTimeout, cfg.HackClub.Timeout)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, LinkPolicyEmail, cfg.Auth.LinkPolicy)
	assert.Equal(t, defaultSweepInterval, cfg.Retention.SweepInterval)
	assert.Equal(t, defaultProviderTokensPerIdentity, cfg.Retention.ProviderTokensPerIdentity)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(defaultRateLimitRate), cfg.RateLimit.Rate)
	assert.True(t, cfg.Migrations.AutoMigrate)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Auth = &AuthConfig{AccessTokenTTL: time.Minute, LinkPolicy: LinkPolicyStrict}
	cfg.Retention = &RetentionConfig{SweepInterval: 0, ProviderTokensPerIdentity: 0}
	cfg.RateLimit = &RateLimitConfig{Enabled: false, Rate: 2, Burst: 3}

	cfg.ApplyDefaults()

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, LinkPolicyStrict, cfg.Auth.LinkPolicy)
	assert.Zero(t, cfg.Retention.SweepInterval)
	assert.Zero(t, cfg.Retention.ProviderTokensPerIdentity)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing signing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = " " }, wantErr: true},
		{name: "missing master key", mutate: func(cfg *Config) { cfg.SecretKey.MasterKey = "" }, wantErr: true},
		{name: "missing client credentials", mutate: func(cfg *Config) { cfg.HackClub.ClientSecret = "" }, wantErr: true},
		{name: "mock client needs no credentials", mutate: func(cfg *Config) {
			cfg.HackClub.Mock = true
			cfg.HackClub.ClientID = ""
			cfg.HackClub.ClientSecret = ""
		}},
		{name: "missing callback", mutate: func(cfg *Config) { cfg.HackClub.CallbackURL = "" }, wantErr: true},
		{name: "negative ttl", mutate: func(cfg *Config) { cfg.Auth.RefreshTokenTTL = -time.Second }, wantErr: true},
		{name: "unknown link policy", mutate: func(cfg *Config) { cfg.Auth.LinkPolicy = "anything" }, wantErr: true},
		{name: "negative retention", mutate: func(cfg *Config) { cfg.Retention.ProviderTokensPerIdentity = -1 }, wantErr: true},
		{name: "sample signing secret outside local", mutate: func(cfg *Config) { cfg.SecretKey.Access = sampleAccessSecret }, wantErr: true},
		{name: "sample master key outside local", mutate: func(cfg *Config) { cfg.SecretKey.MasterKey = sampleMasterKey }, wantErr: true},
		{name: "sample secrets with empty env", mutate: func(cfg *Config) {
			cfg.Env.Env = ""
			cfg.SecretKey.Access = sampleAccessSecret
		}, wantErr: true},
		{name: "sample secrets in local", mutate: func(cfg *Config) {
			cfg.Env.Env = EnvLocal
			cfg.SecretKey.Access = sampleAccessSecret
			cfg.SecretKey.MasterKey = sampleMasterKey
		}},
		{name: "trusted proxy cidr", mutate: func(cfg *Config) { cfg.HTTP.TrustedProxies = []string{"10.0.0.0/8"} }},
		{name: "malformed trusted proxy", mutate: func(cfg *Config) { cfg.HTTP.TrustedProxies = []string{"10.0.0.1"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http:
  trustedProxies: []
secretKey:
  access: from-file
  masterKey: ""
hackClub:
  clientSecret: ""
  callbackUrl: http://localhost:8080/oauth/callback
auth:
  refreshTokenTTL: 24h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_MASTERKEY", "hex:00")
	t.Setenv("HACKCLUB_CLIENTSECRET", "from-env")
	t.Setenv("HTTP_TRUSTEDPROXIES", "10.0.0.0/8,172.16.0.0/12")

	cfg, err := LoadWithEnv[Config]("test")

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.SecretKey.Access)
	assert.Equal(t, "hex:00", cfg.SecretKey.MasterKey)
	assert.Equal(t, "from-env", cfg.HackClub.ClientSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12"}, cfg.HTTP.TrustedProxies)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	assert.Error(t, err)
}

func TestLoadWithEnv_ShippedConfigOnlyValidatesInLocal(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	cfg.Env.Env = "production"

	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
}
