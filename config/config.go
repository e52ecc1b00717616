package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"

	defaultHackClubHost  = "https://auth.hackclub.com"
	defaultHackClubScope = "identity"
	defaultHTTPTimeout   = 10 * time.Second

	defaultAccessTokenTTL  = time.Hour
	defaultRefreshTokenTTL = 30 * 24 * time.Hour
	defaultStateCookieTTL  = 10 * time.Minute

	defaultSweepInterval             = time.Hour
	defaultProviderTokensPerIdentity = 5

	defaultRateLimitRate  = 5
	defaultRateLimitBurst = 10
)

// EnvLocal is the only environment allowed to run with the secrets shipped in config.yaml.
const EnvLocal = "local"

// Secrets committed in config/config.yaml for local development.
const (
	sampleAccessSecret = "local-development-signing-secret"
	sampleMasterKey    = "base64:MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
)

// Link policies accepted by AuthConfig.LinkPolicy.
const (
	// LinkPolicyEmail links a first-seen external identity to an existing user with the same email.
	LinkPolicyEmail = "email"
	// LinkPolicyStrict refuses to attach a first-seen external identity to a user that already exists.
	LinkPolicyStrict = "strict"
)

// ErrInvalidConfig is returned by Validate when a required setting is missing or malformed.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustedProxies lists the CIDRs whose X-Forwarded-For is believed. Empty means the peer address is the client.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrations controls schema migration at startup.
	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	SecretKey struct {
		// Access signs session access tokens (HS256).
		Access string `json:"access" yaml:"access"`
		// MasterKey encrypts provider tokens at rest. Accepts "base64:", "hex:" or bare base64.
		MasterKey string `json:"masterKey" yaml:"masterKey"`
	} `json:"secretKey" yaml:"secretKey"`

	HackClub *HackClubConfig `json:"hackClub" yaml:"hackClub"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Retention configuration for the background sweeper
	Retention *RetentionConfig `json:"retention" yaml:"retention"`

	// RateLimit configuration for the /auth endpoints
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// HackClubConfig defines the upstream identity provider settings.
type HackClubConfig struct {
	Host         string        `json:"host" yaml:"host"`
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	CallbackURL  string        `json:"callbackUrl" yaml:"callbackUrl"`
	Scope        string        `json:"scope" yaml:"scope"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	// Mock substitutes the deterministic offline client for the live one.
	Mock bool `json:"mock" yaml:"mock"`
}

// AuthConfig defines session and account-linking configuration
type AuthConfig struct {
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	LinkPolicy      string        `json:"linkPolicy" yaml:"linkPolicy"`
	EnforceState    bool          `json:"enforceState" yaml:"enforceState"`
	StateCookieTTL  time.Duration `json:"stateCookieTTL" yaml:"stateCookieTTL"`
	SecureCookies   bool          `json:"secureCookies" yaml:"secureCookies"`
}

// MigrationsConfig defines schema migration behaviour
type MigrationsConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// RetentionConfig defines how long expired and superseded records are kept
type RetentionConfig struct {
	// SweepInterval between sweeps; zero disables the sweeper.
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	// ProviderTokensPerIdentity is how many provider token records survive a sweep; zero disables pruning.
	ProviderTokensPerIdentity int `json:"providerTokensPerIdentity" yaml:"providerTokensPerIdentity"`
}

// RateLimitConfig defines the per-client request rate on the /auth endpoints
type RateLimitConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Burst   int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Align each ENV segment with the YAML keys already loaded.
			// Example: SECRETKEY_MASTERKEY -> secretKey.masterKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections and zero values with their defaults.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.HackClub == nil {
		cfg.HackClub = &HackClubConfig{}
	}
	if cfg.HackClub.Host == "" {
		cfg.HackClub.Host = defaultHackClubHost
	}
	cfg.HackClub.Host = strings.TrimRight(cfg.HackClub.Host, "/")
	if cfg.HackClub.Scope == "" {
		cfg.HackClub.Scope = defaultHackClubScope
	}
	if cfg.HackClub.Timeout <= 0 {
		cfg.HackClub.Timeout = defaultHTTPTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.LinkPolicy == "" {
		cfg.Auth.LinkPolicy = LinkPolicyEmail
	}
	if cfg.Auth.StateCookieTTL == 0 {
		cfg.Auth.StateCookieTTL = defaultStateCookieTTL
	}

	if cfg.Retention == nil {
		cfg.Retention = &RetentionConfig{
			SweepInterval:             defaultSweepInterval,
			ProviderTokensPerIdentity: defaultProviderTokensPerIdentity,
		}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Enabled: true}
	}
	if cfg.RateLimit.Rate <= 0 {
		cfg.RateLimit.Rate = defaultRateLimitRate
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateLimitBurst
	}

	if cfg.Migrations == nil {
		cfg.Migrations = &MigrationsConfig{AutoMigrate: true}
	}
}

// Validate refuses configurations the process must not start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.Wrap(ErrInvalidConfig, "secretKey.access must be set")
	}
	if strings.TrimSpace(cfg.SecretKey.MasterKey) == "" {
		return errors.Wrap(ErrInvalidConfig, "secretKey.masterKey must be set")
	}
	if cfg.Env.Env != EnvLocal {
		if strings.TrimSpace(cfg.SecretKey.Access) == sampleAccessSecret {
			return errors.Wrapf(ErrInvalidConfig, "secretKey.access is the sample value and env.env is %q", cfg.Env.Env)
		}
		if strings.TrimSpace(cfg.SecretKey.MasterKey) == sampleMasterKey {
			return errors.Wrapf(ErrInvalidConfig, "secretKey.masterKey is the sample value and env.env is %q", cfg.Env.Env)
		}
	}

	for _, cidr := range cfg.HTTP.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return errors.Wrapf(ErrInvalidConfig, "http.trustedProxies: %v", err)
		}
	}

	if cfg.HackClub == nil {
		return errors.Wrap(ErrInvalidConfig, "hackClub section must be set")
	}
	if !cfg.HackClub.Mock && (cfg.HackClub.ClientID == "" || cfg.HackClub.ClientSecret == "") {
		return errors.Wrap(ErrInvalidConfig, "hackClub.clientId and hackClub.clientSecret must be set")
	}
	if cfg.HackClub.CallbackURL == "" {
		return errors.Wrap(ErrInvalidConfig, "hackClub.callbackUrl must be set")
	}

	if cfg.Auth == nil {
		return errors.Wrap(ErrInvalidConfig, "auth section must be set")
	}
	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return errors.Wrap(ErrInvalidConfig, "token TTLs must be positive")
	}
	switch cfg.Auth.LinkPolicy {
	case LinkPolicyEmail, LinkPolicyStrict:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown auth.linkPolicy %q", cfg.Auth.LinkPolicy)
	}

	if cfg.Retention != nil && cfg.Retention.ProviderTokensPerIdentity < 0 {
		return errors.Wrap(ErrInvalidConfig, "retention.providerTokensPerIdentity must not be negative")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
