// Package assistant holds the AI features of the site: the support chat,
// the grounded resource search and the daily policy brief. Every feature
// degrades to fixed text when no AI key is configured or the provider
// fails, so callers never branch on the failure.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/apperr"
	"github.com/voicethroughimage/vti/internal/llm"
)

// ErrAPIKeyMissing is returned when a chat is requested without an AI key.
var ErrAPIKeyMissing = errors.New("API Key missing")

// Source is one cited web page.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// NewsResult is the daily brief.
type NewsResult struct {
	Text       string   `json:"text"`
	Sources    []Source `json:"sources"`
	IsFallback bool     `json:"isFallback,omitempty"`
}

// Assistant runs the AI features against a TextGenerator. A nil generator
// means no key is configured.
type Assistant struct {
	gen   llm.TextGenerator
	model string
	log   zerolog.Logger
	now   func() time.Time
}

// New creates an Assistant. gen may be nil.
func New(gen llm.TextGenerator, model string, log zerolog.Logger) *Assistant {
	return &Assistant{gen: gen, model: model, log: log, now: time.Now}
}

// Live reports whether a provider is configured.
func (a *Assistant) Live() bool {
	return a != nil && a.gen != nil
}

// NewChat opens a support conversation with the persona prompt.
func (a *Assistant) NewChat(ctx context.Context) (llm.Chat, error) {
	if !a.Live() {
		return nil, ErrAPIKeyMissing
	}
	return a.gen.NewChat(ctx, llm.ChatConfig{Model: a.model, System: Persona})
}

// ResourceAssistance answers a free-text request for help with a grounded
// web search. Failures are reported as text.
func (a *Assistant) ResourceAssistance(ctx context.Context, query, location string) string {
	if !a.Live() {
		return ResourceDemoText
	}
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}

	resp, err := a.gen.Complete(ctx, llm.CompletionRequest{
		Model:          a.model,
		Messages:       []llm.Message{{Role: llm.RoleUser, Content: resourcePrompt(query, location)}},
		Search:         true,
		ThinkingBudget: resourceThinkingBudget,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("resource assistance failed")
		if apperr.IsQuota(err) {
			return ResourceQuotaText
		}
		return ResourceTimeoutText
	}

	text := resp.Content
	if text == "" {
		text = ResourceBusyText
	}
	if len(resp.Citations) > 0 {
		var b strings.Builder
		b.WriteString(text)
		b.WriteString(ResourceSourceHeader)
		cites := resp.Citations
		if len(cites) > 3 {
			cites = cites[:3]
		}
		for _, c := range cites {
			if c.URI == "" {
				continue
			}
			title := c.Title
			if title == "" {
				title = ResourceSourceTitle
			}
			b.WriteString("\n• " + title + ": " + c.URI)
		}
		text = b.String()
	}
	return text
}

// DailyNews summarizes the week's California policy news in lang. Any
// failure yields FallbackNews.
func (a *Assistant) DailyNews(ctx context.Context, lang string) NewsResult {
	if !a.Live() {
		a.log.Debug().Str("lang", lang).Msg("demo mode, returning fallback news")
		return FallbackNews(lang)
	}

	resp, err := a.gen.Complete(ctx, llm.CompletionRequest{
		Model:    a.model,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: newsPrompt(a.now(), lang)}},
		Search:   true,
	})
	if err != nil {
		a.log.Warn().Err(err).Str("lang", lang).Msg("news fetch failed")
		return FallbackNews(lang)
	}

	out := NewsResult{Text: resp.Content, Sources: []Source{}}
	if out.Text == "" {
		out.Text = newsEmptyEn
		if isChinese(lang) {
			out.Text = newsEmptyZh
		}
	}
	for _, c := range resp.Citations {
		if c.URI == "" {
			continue
		}
		title := c.Title
		if title == "" {
			title = NewsSourceTitle
		}
		out.Sources = append(out.Sources, Source{Title: title, URI: c.URI})
	}
	return out
}
