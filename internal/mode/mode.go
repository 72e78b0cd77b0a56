// Package mode decides, per feature, whether the site talks to the hosted
// services or to their local substitutes.
package mode

import (
	"strings"
	"sync"

	"github.com/voicethroughimage/vti/internal/config"
)

// Banner labels for missing credentials.
const (
	LabelAIMissing = "AI Key Missing"
	LabelDBMissing = "DB Key Missing"
)

// Flags are computed from the startup configuration and never change for
// the lifetime of the process.
type Flags struct {
	LiveIdentity bool // Firebase auth, Firestore and Storage
	LiveAI       bool // chat, grounded search, news
}

// Resolve derives the flags from cfg. It has no side effects, so calling it
// repeatedly with the same configuration yields the same flags.
func Resolve(cfg *config.Config) Flags {
	if cfg == nil {
		return Flags{}
	}
	return Flags{
		LiveIdentity: strings.TrimSpace(cfg.Firebase.APIKey) != "",
		LiveAI:       strings.TrimSpace(cfg.AI.APIKey) != "",
	}
}

// Limited reports whether any feature runs on its local substitute.
func (f Flags) Limited() bool {
	return !f.LiveIdentity || !f.LiveAI
}

// Missing lists the banner labels for the absent credentials.
func (f Flags) Missing() []string {
	var out []string
	if !f.LiveAI {
		out = append(out, LabelAIMissing)
	}
	if !f.LiveIdentity {
		out = append(out, LabelDBMissing)
	}
	return out
}

// UsePersistence reports whether storage and uploads should use the live
// services for a session whose fallback state is fb.
func (f Flags) UsePersistence(fb *Fallback) bool {
	return f.LiveIdentity && !fb.Active()
}

// Fallback is the session-scoped demo switch. Once a live write or upload
// fails the session stays on the local substitute until Reset.
// The zero value is ready to use.
type Fallback struct {
	mu     sync.Mutex
	active bool
	reason string
}

// Degrade switches the session to the local substitute. It reports true
// only for the call that performed the switch; the first reason is kept.
func (fb *Fallback) Degrade(reason string) bool {
	if fb == nil {
		return false
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.active {
		return false
	}
	fb.active = true
	fb.reason = reason
	return true
}

// Active reports whether the session has been degraded.
func (fb *Fallback) Active() bool {
	if fb == nil {
		return false
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.active
}

// Reason returns the reason recorded by the first Degrade call.
func (fb *Fallback) Reason() string {
	if fb == nil {
		return ""
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.reason
}

// Reset returns the session to the live path ("Retry Connection").
func (fb *Fallback) Reset() {
	if fb == nil {
		return
	}
	fb.mu.Lock()
	fb.active = false
	fb.reason = ""
	fb.mu.Unlock()
}

// Credential is one line of the startup diagnostics.
type Credential struct {
	Env    string
	Loaded bool
}

// Status is the diagnostics word for the credential.
func (c Credential) Status() string {
	if c.Loaded {
		return "LOADED"
	}
	return "MISSING"
}

// Credentials lists the hosting-environment keys behind the flags, as shown
// in the configuration panel and by the doctor command.
func (f Flags) Credentials() []Credential {
	return []Credential{
		{Env: "GEMINI_API_KEY", Loaded: f.LiveAI},
		{Env: "VITE_FIREBASE_API_KEY", Loaded: f.LiveIdentity},
	}
}
