package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port              int    `yaml:"port"`
	GinMode           string `yaml:"gin_mode"`
	HydrationFallback string `yaml:"hydration_fallback"`
}

type BackendConfig struct {
	AuthBaseURL     string `yaml:"auth_base_url"`
	RequestsBaseURL string `yaml:"requests_base_url"`
	Timeout         string `yaml:"timeout"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	TTL        string `yaml:"ttl"`
	CookieName string `yaml:"cookie_name"`
}

type GoogleConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

type MapsConfig struct {
	APIKey string `yaml:"api_key"`
}

type CasbinConfig struct {
	ModelPath  string `yaml:"model_path"`
	PolicyPath string `yaml:"policy_path"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	Backend BackendConfig `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
	Google  GoogleConfig  `yaml:"google"`
	Maps    MapsConfig    `yaml:"maps"`
	Casbin  CasbinConfig  `yaml:"casbin"`
}

// Config is the resolved runtime configuration. Secrets and backend URLs
// come from the environment and must be present; initialization fails fast
// when they are not.
type Config struct {
	Port              string
	GinMode           string
	HydrationFallback time.Duration

	AuthBaseURL     string
	RequestsBaseURL string
	BackendTimeout  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret string
	SessionIssuer string
	SessionTTL    time.Duration
	CookieName    string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	MapsAPIKey string

	CasbinModelPath  string
	CasbinPolicyPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, applies environment overrides and
// validates that every required setting is present.
func Load() (*Config, error) {
	return LoadFrom("config/config.yml")
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	backendTimeout, err := parseDuration(file.Backend.Timeout, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}

	sessionTTL, err := parseDuration(file.Session.TTL, 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	fallback, err := parseDuration(file.App.HydrationFallback, time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid hydration fallback: %w", err)
	}

	cfg := &Config{
		Port:              fmt.Sprintf("%d", file.App.Port),
		GinMode:           env("GIN_MODE", file.App.GinMode),
		HydrationFallback: fallback,

		AuthBaseURL:     env("BACKEND_APP_URL", file.Backend.AuthBaseURL),
		RequestsBaseURL: env("BACKEND_APP_URL1", file.Backend.RequestsBaseURL),
		BackendTimeout:  backendTimeout,

		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       file.Redis.DB,

		SessionSecret: env("SESSION_SECRET", file.Session.Secret),
		SessionIssuer: file.Session.Issuer,
		SessionTTL:    sessionTTL,
		CookieName:    file.Session.CookieName,

		GoogleClientID:     env("GOOGLE_CLIENT_ID", file.Google.ClientID),
		GoogleClientSecret: env("GOOGLE_CLIENT_SECRET", file.Google.ClientSecret),
		GoogleRedirectURL:  env("GOOGLE_REDIRECT_URL", file.Google.RedirectURL),

		MapsAPIKey: env("MAPS_API_KEY", file.Maps.APIKey),

		CasbinModelPath:  file.Casbin.ModelPath,
		CasbinPolicyPath: file.Casbin.PolicyPath,
	}

	if cfg.CookieName == "" {
		cfg.CookieName = "hemolink_session"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"backend auth base URL (BACKEND_APP_URL)", c.AuthBaseURL},
		{"backend requests base URL (BACKEND_APP_URL1)", c.RequestsBaseURL},
		{"session secret (SESSION_SECRET)", c.SessionSecret},
		{"google client id (GOOGLE_CLIENT_ID)", c.GoogleClientID},
		{"google client secret (GOOGLE_CLIENT_SECRET)", c.GoogleClientSecret},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required configuration: %s", r.name)
		}
	}
	return nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}
