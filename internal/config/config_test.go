package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AI.Provider != ProviderGoogle {
		t.Errorf("expected default provider %q, got %q", ProviderGoogle, cfg.AI.Provider)
	}
	if cfg.AI.Model != "gemini-3-flash-preview" {
		t.Errorf("expected default model gemini-3-flash-preview, got %q", cfg.AI.Model)
	}
	if cfg.Demo.AdminLatency != 500*time.Millisecond {
		t.Errorf("expected admin latency 500ms, got %v", cfg.Demo.AdminLatency)
	}
	if cfg.Demo.SubmitLatency != time.Second {
		t.Errorf("expected submit latency 1s, got %v", cfg.Demo.SubmitLatency)
	}
	if cfg.Demo.UploadLatency != 800*time.Millisecond {
		t.Errorf("expected upload latency 800ms, got %v", cfg.Demo.UploadLatency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vti.yml")

	original := DefaultConfig()
	original.AI.Provider = ProviderOpenAI
	original.AI.Model = "gpt-4o"
	original.Server.Port = 9090
	original.Admin.Emails = []string{"director@example.org", "ops@example.org"}
	original.Firebase.ProjectID = "vti-test"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.AI.Provider != original.AI.Provider {
		t.Errorf("provider: got %q, want %q", loaded.AI.Provider, original.AI.Provider)
	}
	if loaded.AI.Model != original.AI.Model {
		t.Errorf("model: got %q, want %q", loaded.AI.Model, original.AI.Model)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Firebase.ProjectID != "vti-test" {
		t.Errorf("project_id: got %q", loaded.Firebase.ProjectID)
	}
	if len(loaded.Admin.Emails) != 2 {
		t.Fatalf("admin emails: got %d, want 2", len(loaded.Admin.Emails))
	}
	if loaded.Demo.AdminLatency != original.Demo.AdminLatency {
		t.Errorf("admin latency: got %v, want %v", loaded.Demo.AdminLatency, original.Demo.AdminLatency)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vti.yml")

	t.Setenv("VTI_SERVER__PORT", "7070")
	t.Setenv("VTI_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("expected port 7070 from env, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug from env, got %q", cfg.Log.Level)
	}
}

func TestHostEnvNames(t *testing.T) {
	env := map[string]string{
		"GEMINI_API_KEY":               "gemini-secret",
		"VITE_FIREBASE_API_KEY":        "fb-key",
		"VITE_FIREBASE_PROJECT_ID":     "vti-prod",
		"VITE_FIREBASE_STORAGE_BUCKET": "vti-prod.appspot.com",
	}
	cfg := DefaultConfig()
	applyHostEnv(cfg, func(k string) string { return env[k] })

	if cfg.AI.APIKey != "gemini-secret" {
		t.Errorf("ai key: got %q", cfg.AI.APIKey)
	}
	if cfg.Firebase.APIKey != "fb-key" {
		t.Errorf("firebase key: got %q", cfg.Firebase.APIKey)
	}
	if cfg.Firebase.ProjectID != "vti-prod" {
		t.Errorf("project: got %q", cfg.Firebase.ProjectID)
	}
	if cfg.Firebase.StorageBucket != "vti-prod.appspot.com" {
		t.Errorf("bucket: got %q", cfg.Firebase.StorageBucket)
	}
}

func TestHostEnvDoesNotOverrideFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AI.APIKey = "from-file"
	applyHostEnv(cfg, func(k string) string {
		if k == "GEMINI_API_KEY" {
			return "from-env"
		}
		return ""
	})
	if cfg.AI.APIKey != "from-file" {
		t.Errorf("expected file value to win, got %q", cfg.AI.APIKey)
	}
}

func TestHostEnvLegacyAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	applyHostEnv(cfg, func(k string) string {
		if k == "API_KEY" {
			return "legacy"
		}
		return ""
	})
	if cfg.AI.APIKey != "legacy" {
		t.Errorf("expected API_KEY fallback, got %q", cfg.AI.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad provider", func(c *Config) { c.AI.Provider = "anthropic" }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"short secret", func(c *Config) { c.Session.Secret = "abc" }, true},
		{"long secret", func(c *Config) { c.Session.Secret = "0123456789abcdef0123" }, false},
		{"negative latency", func(c *Config) { c.Demo.UploadLatency = -time.Second }, true},
		{"zero upload cap", func(c *Config) { c.Uploads.MaxBytes = 0 }, true},
		{"telegram without chat", func(c *Config) { c.Notify.TelegramToken = "123:abc" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRestrictsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vti.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm()&0o077 != 0 {
		t.Errorf("config with secrets should not be group/world readable, got %v", info.Mode().Perm())
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a@x.org, ,b@x.org ")
	if len(got) != 2 || got[0] != "a@x.org" || got[1] != "b@x.org" {
		t.Errorf("unexpected split: %#v", got)
	}
}
