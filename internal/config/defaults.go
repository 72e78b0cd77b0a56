package config

import "time"

// DefaultModels maps each provider to the model used when none is configured.
var DefaultModels = map[ProviderType]string{
	ProviderGoogle: "gemini-3-flash-preview",
	ProviderOpenAI: "gpt-4o-mini",
}

// DefaultConfig returns a Config with sensible defaults. With no secrets set
// the site runs entirely in demo mode.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".vti",
		Server: ServerConfig{
			Port: 8080,
		},
		AI: AIConfig{
			Provider:          ProviderGoogle,
			Model:             DefaultModels[ProviderGoogle],
			RequestsPerMinute: 30,
		},
		Admin: AdminConfig{
			Claim:          "admin",
			AuditRetention: 365 * 24 * time.Hour,
		},
		Demo: DemoConfig{
			AdminLatency:  500 * time.Millisecond,
			SubmitLatency: 1000 * time.Millisecond,
			UploadLatency: 800 * time.Millisecond,
		},
		Session: SessionConfig{
			CookieName: "vti_session",
			TTL:        12 * time.Hour,
			FreshTTL:   10 * time.Minute,
		},
		Uploads: UploadConfig{
			MaxBytes: 100 << 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
