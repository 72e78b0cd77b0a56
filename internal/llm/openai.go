package llm

import (
	"context"
	"errors"
	"io"
	"iter"
	"net/http"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements TextGenerator using the OpenAI Chat Completions
// API or any server compatible with it. It has no search grounding, so
// responses never carry citations.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, model, baseURL string, hc *http.Client) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if hc != nil {
		cfg.HTTPClient = hc
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func openAIMessages(system string, msgs []Message) []openai.ChatCompletionMessage {
	var out []openai.ChatCompletionMessage
	if system != "" {
		out = append(out, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	for _, m := range msgs {
		out = append(out, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    openAIMessages(req.System, req.Messages),
		MaxTokens:   maxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return nil, classify(p.Name(), err)
	}

	out := &CompletionResponse{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}

func (p *OpenAIProvider) NewChat(_ context.Context, cfg ChatConfig) (Chat, error) {
	model := cfg.Model
	if model == "" {
		model = p.model
	}
	return &openAIChat{p: p, model: model, system: cfg.System, temperature: cfg.Temperature}, nil
}

type openAIChat struct {
	p           *OpenAIProvider
	model       string
	system      string
	temperature float64

	mu      sync.Mutex
	history []Message
}

func (c *openAIChat) Send(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		c.mu.Lock()
		msgs := append(append([]Message(nil), c.history...), Message{Role: RoleUser, Content: text})
		c.mu.Unlock()

		stream, err := c.p.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    openAIMessages(c.system, msgs),
			Temperature: float32(c.temperature),
			Stream:      true,
		})
		if err != nil {
			yield("", classify(c.p.Name(), err))
			return
		}
		defer stream.Close()

		var reply strings.Builder
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				yield("", classify(c.p.Name(), err))
				return
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}
			chunk := resp.Choices[0].Delta.Content
			reply.WriteString(chunk)
			if !yield(chunk, nil) {
				return
			}
		}

		c.mu.Lock()
		c.history = append(msgs, Message{Role: RoleAssistant, Content: reply.String()})
		c.mu.Unlock()
	}
}
