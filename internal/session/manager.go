package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/i18n"
)

// Options configures a Manager.
type Options struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	// FreshTTL bounds sessions whose cookie never came back (scripts,
	// crawlers, single API calls). Defaults to 10 minutes, at most TTL.
	FreshTTL time.Duration
	Secure   bool
	Log      zerolog.Logger
}

// Manager is the in-memory session registry.
type Manager struct {
	secret   []byte
	cookie   string
	ttl      time.Duration
	freshTTL time.Duration
	secure   bool
	log      zerolog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a registry. Sessions idle longer than TTL are
// dropped by Sweep; sessions never resumed go after FreshTTL.
func NewManager(opts Options) *Manager {
	name := opts.CookieName
	if name == "" {
		name = "vti_session"
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	fresh := opts.FreshTTL
	if fresh <= 0 {
		fresh = 10 * time.Minute
	}
	fresh = min(fresh, ttl)
	return &Manager{
		secret:   []byte(opts.Secret),
		cookie:   name,
		ttl:      ttl,
		freshTTL: fresh,
		secure:   opts.Secure,
		log:      opts.Log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) sign(id string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	return token.SignedString(m.secret)
}

// parse returns the claims of a valid token.
func (m *Manager) parse(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load returns the session named by the request cookie, starting a new one
// when the cookie is missing, tampered with, expired or unknown. The
// cookie is refreshed once half its lifetime has passed.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) *Session {
	now := m.now()
	if c, err := r.Cookie(m.cookie); err == nil {
		claims, err := m.parse(c.Value)
		if err != nil {
			m.log.Debug().Err(err).Msg("rejecting session cookie")
		} else if s := m.get(claims.ID); s != nil {
			s.touch(now)
			if claims.IssuedAt != nil && now.Sub(claims.IssuedAt.Time) > m.ttl/2 {
				m.issue(w, s.ID, now)
			}
			return s
		}
	}

	s := newSession(uuid.NewString(), i18n.FromAcceptLanguage(r.Header.Get("Accept-Language")), now)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	m.issue(w, s.ID, now)
	return s
}

func (m *Manager) issue(w http.ResponseWriter, id string, now time.Time) {
	token, err := m.sign(id, now)
	if err != nil {
		m.log.Error().Err(err).Msg("signing session token")
		return
	}
	m.setCookie(w, token)
}

func (m *Manager) get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops idle sessions and reports how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		idle, returned := s.idleSince(now)
		limit := m.ttl
		if !returned {
			limit = m.freshTTL
		}
		if idle > limit {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug().Int("removed", n).Int("live", m.Len()).Msg("swept idle sessions")
			}
		}
	}
}

type ctxKey struct{}

// Middleware loads the session and stores it in the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Load(w, r)
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
	})
}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
