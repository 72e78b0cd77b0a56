package config

import "time"

// ProviderType identifies a generative-AI provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level site configuration, corresponding to vti.yml.
type Config struct {
	DataDir  string            `yaml:"data_dir" koanf:"data_dir"`
	Server   ServerConfig      `yaml:"server" koanf:"server"`
	Firebase FirebaseConfig    `yaml:"firebase" koanf:"firebase"`
	Google   GoogleOAuthConfig `yaml:"google" koanf:"google"`
	AI       AIConfig          `yaml:"ai" koanf:"ai"`
	Admin    AdminConfig       `yaml:"admin" koanf:"admin"`
	Demo     DemoConfig        `yaml:"demo" koanf:"demo"`
	Session  SessionConfig     `yaml:"session" koanf:"session"`
	Uploads  UploadConfig      `yaml:"uploads" koanf:"uploads"`
	Notify   NotifyConfig      `yaml:"notify" koanf:"notify"`
	Log      LogConfig         `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	BaseURL         string `yaml:"base_url" koanf:"base_url"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ForceHTTPS      bool   `yaml:"force_https" koanf:"force_https"`
}

// FirebaseConfig mirrors the Firebase web app settings. The web API key
// alone decides whether live identity and persistence are enabled.
type FirebaseConfig struct {
	APIKey            string `yaml:"api_key" koanf:"api_key"`
	AuthDomain        string `yaml:"auth_domain" koanf:"auth_domain"`
	ProjectID         string `yaml:"project_id" koanf:"project_id"`
	StorageBucket     string `yaml:"storage_bucket" koanf:"storage_bucket"`
	MessagingSenderID string `yaml:"messaging_sender_id" koanf:"messaging_sender_id"`
	AppID             string `yaml:"app_id" koanf:"app_id"`
	CredentialsFile   string `yaml:"credentials_file" koanf:"credentials_file"`
}

// GoogleOAuthConfig enables "Continue with Google" in live mode.
type GoogleOAuthConfig struct {
	ClientID     string `yaml:"client_id" koanf:"client_id"`
	ClientSecret string `yaml:"client_secret" koanf:"client_secret"`
	RedirectURL  string `yaml:"redirect_url" koanf:"redirect_url"`
}

// AIConfig selects the generative-AI provider.
type AIConfig struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	APIKey            string       `yaml:"api_key" koanf:"api_key"`
	Model             string       `yaml:"model" koanf:"model"`
	BaseURL           string       `yaml:"base_url" koanf:"base_url"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// AdminConfig is the explicit admin policy.
type AdminConfig struct {
	Emails []string `yaml:"emails" koanf:"emails"`
	Claim  string   `yaml:"claim" koanf:"claim"`
	// AuditRetention is how long staff activity is kept; 0 keeps it forever.
	AuditRetention time.Duration `yaml:"audit_retention" koanf:"audit_retention"`
}

// DemoConfig tunes the simulated latency of the local substitutes.
type DemoConfig struct {
	AdminLatency  time.Duration `yaml:"admin_latency" koanf:"admin_latency"`
	SubmitLatency time.Duration `yaml:"submit_latency" koanf:"submit_latency"`
	UploadLatency time.Duration `yaml:"upload_latency" koanf:"upload_latency"`
}

// SessionConfig controls the browser session cookie.
type SessionConfig struct {
	Secret     string        `yaml:"secret" koanf:"secret"`
	CookieName string        `yaml:"cookie_name" koanf:"cookie_name"`
	TTL        time.Duration `yaml:"ttl" koanf:"ttl"`
	FreshTTL   time.Duration `yaml:"fresh_ttl" koanf:"fresh_ttl"`
	Secure     bool          `yaml:"secure" koanf:"secure"`
}

// UploadConfig limits story media uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" koanf:"max_bytes"`
}

// NotifyConfig lists the staff channels for outreach submissions.
type NotifyConfig struct {
	Webhooks       []string `yaml:"webhooks" koanf:"webhooks"`
	TelegramToken  string   `yaml:"telegram_token" koanf:"telegram_token"`
	TelegramChatID int64    `yaml:"telegram_chat_id" koanf:"telegram_chat_id"`
}

// LogConfig controls the root logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Pretty bool   `yaml:"pretty" koanf:"pretty"`
}
