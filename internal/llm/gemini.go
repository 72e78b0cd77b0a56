package llm

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements TextGenerator with the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini provider. A non-empty baseURL points
// the client at a proxy or emulator.
func NewGeminiProvider(ctx context.Context, apiKey, model, baseURL string, hc *http.Client) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Name() string {
	return "google"
}

func (p *GeminiProvider) modelFor(m string) string {
	if m == "" {
		return p.model
	}
	return m
}

func geminiConfig(system string, temperature float64, maxTokens int) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(temperature))
	}
	if maxTokens > 0 {
		cfg.MaxOutputTokens = int32(maxTokens)
	}
	return cfg
}

func geminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	cfg := geminiConfig(req.System, req.Temperature, req.MaxTokens)
	if req.Search {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(req.ThinkingBudget))}
	}

	model := p.modelFor(req.Model)
	resp, err := p.client.Models.GenerateContent(ctx, model, geminiContents(req.Messages), cfg)
	if err != nil {
		return nil, classify(p.Name(), err)
	}

	out := &CompletionResponse{
		Content:   resp.Text(),
		Citations: citations(resp),
		Model:     firstNonEmpty(resp.ModelVersion, model),
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if u := resp.UsageMetadata; u != nil {
		out.InputTokens = int(u.PromptTokenCount)
		out.OutputTokens = int(u.CandidatesTokenCount)
	}
	return out, nil
}

// citations collects the web sources of the first candidate.
func citations(resp *genai.GenerateContentResponse) []Citation {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	gm := resp.Candidates[0].GroundingMetadata
	if gm == nil {
		return nil
	}
	var out []Citation
	for _, ch := range gm.GroundingChunks {
		if ch == nil || ch.Web == nil {
			continue
		}
		out = append(out, Citation{Title: ch.Web.Title, URI: ch.Web.URI})
	}
	return out
}

func (p *GeminiProvider) NewChat(ctx context.Context, cfg ChatConfig) (Chat, error) {
	chat, err := p.client.Chats.Create(ctx, p.modelFor(cfg.Model), geminiConfig(cfg.System, cfg.Temperature, 0), nil)
	if err != nil {
		return nil, classify(p.Name(), err)
	}
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (c *geminiChat) Send(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range c.chat.SendMessageStream(ctx, genai.Part{Text: text}) {
			if err != nil {
				yield("", classify("google", err))
				return
			}
			chunk := resp.Text()
			if chunk == "" {
				continue
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
