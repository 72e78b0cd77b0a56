package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/voicethroughimage/vti/internal/llm"
)

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrBusy         = errors.New("a reply is still streaming")
)

// Message roles in a Conversation.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one bubble of the support chat.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Conversation is the chat transcript of one visitor. It opens the
// provider chat lazily and allows one turn at a time.
type Conversation struct {
	mu       sync.Mutex
	chat     llm.Chat
	messages []ChatMessage
	busy     bool
}

// NewConversation starts a transcript with the localized welcome.
func NewConversation(welcome string) *Conversation {
	return &Conversation{messages: []ChatMessage{{Role: RoleModel, Text: welcome}}}
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChatMessage(nil), c.messages...)
}

// Send posts text and streams the reply into the last message, calling
// onChunk for every fragment. On failure empty messages are dropped and the
// error is returned for the caller to show.
func (c *Conversation) Send(ctx context.Context, a *Assistant, text string, onChunk func(string)) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.messages = append(c.messages, ChatMessage{Role: RoleUser, Text: text})
	chat := c.chat
	c.mu.Unlock()

	err := c.stream(ctx, a, chat, text, onChunk)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		kept := c.messages[:0]
		for _, m := range c.messages {
			if m.Text != "" {
				kept = append(kept, m)
			}
		}
		c.messages = kept
	}
	return err
}

func (c *Conversation) stream(ctx context.Context, a *Assistant, chat llm.Chat, text string, onChunk func(string)) error {
	if chat == nil {
		var err error
		if chat, err = a.NewChat(ctx); err != nil {
			return err
		}
		c.mu.Lock()
		c.chat = chat
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.messages = append(c.messages, ChatMessage{Role: RoleModel})
	c.mu.Unlock()

	for chunk, err := range chat.Send(ctx, text) {
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.messages[len(c.messages)-1].Text += chunk
		c.mu.Unlock()
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	return nil
}
