package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for structured overrides, e.g. VTI_SERVER__PORT.
const EnvPrefix = "VTI_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (VTI_*), then fills anything still unset
// from the hosting-environment names the site has always used
// (GEMINI_API_KEY, VITE_FIREBASE_*, ...). A .env file in the working
// directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: VTI_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyHostEnv(cfg, os.Getenv)
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultModels[cfg.AI.Provider]
	}

	return cfg, nil
}

// hostEnv lists the conventional secret names read from the hosting
// environment, in priority order per field.
var hostEnv = []struct {
	names []string
	field func(*Config) *string
}{
	{[]string{"VITE_FIREBASE_API_KEY", "FIREBASE_API_KEY"}, func(c *Config) *string { return &c.Firebase.APIKey }},
	{[]string{"VITE_FIREBASE_AUTH_DOMAIN"}, func(c *Config) *string { return &c.Firebase.AuthDomain }},
	{[]string{"VITE_FIREBASE_PROJECT_ID", "GOOGLE_CLOUD_PROJECT"}, func(c *Config) *string { return &c.Firebase.ProjectID }},
	{[]string{"VITE_FIREBASE_STORAGE_BUCKET"}, func(c *Config) *string { return &c.Firebase.StorageBucket }},
	{[]string{"VITE_FIREBASE_MESSAGING_SENDER_ID"}, func(c *Config) *string { return &c.Firebase.MessagingSenderID }},
	{[]string{"VITE_FIREBASE_APP_ID"}, func(c *Config) *string { return &c.Firebase.AppID }},
	{[]string{"FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "GOOGLE_APPLICATION_CREDENTIALS"}, func(c *Config) *string { return &c.Firebase.CredentialsFile }},
	{[]string{"GOOGLE_OAUTH_CLIENT_ID"}, func(c *Config) *string { return &c.Google.ClientID }},
	{[]string{"GOOGLE_OAUTH_CLIENT_SECRET"}, func(c *Config) *string { return &c.Google.ClientSecret }},
	{[]string{"TELEGRAM_BOT_TOKEN"}, func(c *Config) *string { return &c.Notify.TelegramToken }},
}

func applyHostEnv(cfg *Config, getenv func(string) string) {
	if cfg.AI.APIKey == "" {
		for _, name := range []string{APIKeyEnvVar(cfg.AI.Provider), "API_KEY"} {
			if v := strings.TrimSpace(getenv(name)); v != "" {
				cfg.AI.APIKey = v
				break
			}
		}
	}
	for _, h := range hostEnv {
		dst := h.field(cfg)
		if *dst != "" {
			continue
		}
		for _, name := range h.names {
			if v := strings.TrimSpace(getenv(name)); v != "" {
				*dst = v
				break
			}
		}
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGoogle: true,
	ProviderOpenAI: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("invalid ai.provider %q: must be one of google, openai", c.AI.Provider)
	}

	if c.AI.RequestsPerMinute < 0 {
		return fmt.Errorf("ai.requests_per_minute must be non-negative")
	}

	if c.Admin.AuditRetention < 0 {
		return fmt.Errorf("admin.audit_retention must be non-negative")
	}

	if c.Demo.AdminLatency < 0 || c.Demo.SubmitLatency < 0 || c.Demo.UploadLatency < 0 {
		return fmt.Errorf("demo latencies must be non-negative")
	}

	if c.Uploads.MaxBytes <= 0 {
		return fmt.Errorf("uploads.max_bytes must be positive")
	}

	if c.Session.Secret != "" && len(c.Session.Secret) < 16 {
		return fmt.Errorf("session.secret must be at least 16 characters")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}

	if c.Notify.TelegramToken != "" && c.Notify.TelegramChatID == 0 {
		return fmt.Errorf("notify.telegram_chat_id is required with a telegram token")
	}

	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderGoogle:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

// Secret masks a configured secret for display.
func Secret(v string) string {
	switch {
	case v == "":
		return "MISSING"
	case len(v) <= 8:
		return "LOADED"
	default:
		return "LOADED (" + v[:4] + "…)"
	}
}
