package llm

import (
	"context"
	"iter"

	"golang.org/x/time/rate"
)

// RateLimited wraps a TextGenerator so completions and chat turns share
// one request budget.
type RateLimited struct {
	next    TextGenerator
	limiter *rate.Limiter
}

// NewRateLimited allows at most rpm requests per minute with a burst of
// rpm. A non-positive rpm disables limiting.
func NewRateLimited(next TextGenerator, rpm int) TextGenerator {
	if rpm <= 0 {
		return next
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm),
	}
}

func (r *RateLimited) Name() string {
	return r.next.Name()
}

func (r *RateLimited) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.next.Complete(ctx, req)
}

func (r *RateLimited) NewChat(ctx context.Context, cfg ChatConfig) (Chat, error) {
	chat, err := r.next.NewChat(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &limitedChat{chat: chat, limiter: r.limiter}, nil
}

type limitedChat struct {
	chat    Chat
	limiter *rate.Limiter
}

func (c *limitedChat) Send(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := c.limiter.Wait(ctx); err != nil {
			yield("", err)
			return
		}
		for chunk, err := range c.chat.Send(ctx, text) {
			if !yield(chunk, err) {
				return
			}
		}
	}
}
