// Package session keeps the per-browser application state on the server.
// The browser only holds a signed cookie naming its session.
package session

import (
	"sync"
	"time"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/view"
)

// Flash levels.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next render.
type Flash struct {
	Level string
	Text  string
}

// Edit names the record open in an admin form.
type Edit struct {
	Kind string // "resource" or "story"
	ID   string
}

// Data is the mutable state of one browser. It is only touched through
// Session.Update and Session.Snapshot.
type Data struct {
	State view.State
	User  *identity.User
	Lang  i18n.Lang

	Flashes          []Flash
	BannerDismissed  bool
	WelcomeDismissed bool
	OAuthState       string

	AdminTab  string
	AdminEdit Edit

	AssistQuery  string
	AssistAnswer string
	SearchQuery  string

	StoryType     string
	StoryCategory string

	// Success marks which form confirmation screen to show.
	Success string
}

// Session is one browser's server-side state.
type Session struct {
	ID string

	// Fallback is the session-scoped demo switch.
	Fallback *mode.Fallback
	// News caches the daily brief per language.
	News *assistant.NewsCache

	mu       sync.Mutex
	data     Data
	chat     *assistant.Conversation
	lastSeen time.Time
	returned bool // the browser has sent its cookie back at least once
}

func newSession(id string, lang i18n.Lang, now time.Time) *Session {
	return &Session{
		ID:       id,
		Fallback: &mode.Fallback{},
		News:     &assistant.NewsCache{},
		data:     Data{State: view.Initial(), Lang: lang},
		lastSeen: now,
	}
}

// Snapshot returns a copy of the data.
func (s *Session) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyData()
}

func (s *Session) copyData() Data {
	d := s.data
	if d.User != nil {
		u := *d.User
		d.User = &u
	}
	d.Flashes = append([]Flash(nil), d.Flashes...)
	return d
}

// Update runs fn with exclusive access to the data.
func (s *Session) Update(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Dispatch applies a view action.
func (s *Session) Dispatch(a view.Action) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.State = view.Reduce(s.data.State, a)
	return s.data.State
}

// AddFlash queues a message for the next render.
func (s *Session) AddFlash(level, text string) {
	s.Update(func(d *Data) {
		d.Flashes = append(d.Flashes, Flash{Level: level, Text: text})
	})
}

// TakeFlashes returns the queued messages and clears them, along with a
// snapshot of the rest of the data.
func (s *Session) TakeFlashes() (Data, []Flash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.copyData()
	s.data.Flashes = nil
	return d, d.Flashes
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *identity.User {
	return s.Snapshot().User
}

// SetUser replaces the signed-in user; nil signs out.
func (s *Session) SetUser(u *identity.User) {
	s.Update(func(d *Data) {
		if u == nil {
			d.User = nil
			return
		}
		c := *u
		d.User = &c
	})
}

// Conversation returns the chat transcript, creating it with welcome on
// first use.
func (s *Session) Conversation(welcome string) *assistant.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chat == nil {
		s.chat = assistant.NewConversation(welcome)
	}
	return s.chat
}

// ResetConversation discards the chat transcript.
func (s *Session) ResetConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.returned = true
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen), s.returned
}
