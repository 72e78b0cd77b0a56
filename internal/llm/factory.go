package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/voicethroughimage/vti/internal/config"
)

// ErrNoAPIKey is returned when no provider key is configured.
var ErrNoAPIKey = errors.New("no AI API key configured")

// NewProvider creates the configured provider, rate limited as configured.
// Supported provider types: "google", "openai".
func NewProvider(ctx context.Context, cfg config.AIConfig, hc *http.Client) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Provider == "" {
		cfg.Provider = config.ProviderGoogle
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultModels[cfg.Provider]
	}

	var (
		p   TextGenerator
		err error
	)
	switch cfg.Provider {
	case config.ProviderGoogle:
		p, err = NewGeminiProvider(ctx, cfg.APIKey, model, cfg.BaseURL, hc)
	case config.ProviderOpenAI:
		p = NewOpenAIProvider(cfg.APIKey, model, cfg.BaseURL, hc)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return NewRateLimited(p, cfg.RequestsPerMinute), nil
}
