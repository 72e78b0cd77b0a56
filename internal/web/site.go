// Package web renders the Voice Through Image site and its JSON and
// WebSocket endpoints. All per-browser state lives in the session.
package web

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/media"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/notifications"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// Deps are the collaborators of the site.
type Deps struct {
	Flags     mode.Flags
	Sessions  *session.Manager
	Auth      identity.Authenticator
	OAuth     *identity.GoogleOAuth // nil disables the live Google redirect
	Library   *content.Library
	Media     *media.Service
	Assistant *assistant.Assistant
	Notify    *notifications.Dispatcher
	Inbox     *notifications.Store
	Audit     *audit.Store // optional staff activity log

	UploadsDir string
	MaxUpload  int64
	Log        zerolog.Logger
}

// Site serves the pages.
type Site struct {
	Deps
	views *view.Router
	tmpl  *template.Template
	md    goldmark.Markdown
	log   zerolog.Logger
}

// New parses the embedded templates and registers one renderer per view.
func New(d Deps) (*Site, error) {
	if d.Sessions == nil || d.Auth == nil || d.Library == nil || d.Assistant == nil {
		return nil, fmt.Errorf("web: sessions, auth, library and assistant are required")
	}
	if d.MaxUpload <= 0 {
		d.MaxUpload = media.DefaultMaxBytes
	}
	s := &Site{
		Deps: d,
		md:   newMarkdown(),
		log:  d.Log.With().Str("component", "web").Logger(),
	}
	tmpl, err := parseTemplates(s.funcs())
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl
	s.views = view.NewRouter(s.log)
	s.registerPages()
	for _, v := range view.All() {
		if !s.views.Handles(v) {
			return nil, fmt.Errorf("web: no page for view %s", v)
		}
	}
	return s, nil
}

// Views exposes the page table.
func (s *Site) Views() *view.Router { return s.views }

// RegisterRoutes mounts the site on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	if s.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.UploadsDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(s.Sessions.Middleware)

		r.Get("/", s.handleLaunch)
		r.Get("/go/{view}", s.handleNavigate)
		r.Get("/page", s.handlePage)
		r.Post("/lang", s.handleLang)
		r.Post("/banner/dismiss", s.handleBannerDismiss)
		r.Post("/welcome/dismiss", s.handleWelcomeDismiss)
		r.Post("/mode/retry", s.handleRetry)
		r.Post("/presentation/{dir}", s.handleSlide)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/signup", s.handleSignup)
			r.Get("/google", s.handleGoogle)
			r.Get("/google/callback", s.handleGoogleCallback)
			r.Post("/logout", s.handleLogout)
			r.Post("/verify", s.handleVerify)
		})
		r.Post("/account/profile", s.handleProfile)
		r.Post("/account/delete", s.handleDeleteAccount)

		r.Post("/resources/assist", s.handleAssist)
		r.Post("/resources/search", s.handleSearch)
		r.Post("/stories/filter", s.handleStoryFilter)
		r.Post("/stories/submit", s.handleSubmitStory)
		r.Post("/volunteer", s.handleVolunteer)
		r.Post("/contact", s.handleContact)
		r.Post("/chat/send", s.handleChatSend)
		r.Post("/chat/reset", s.handleChatReset)
		r.Get("/ws/chat", s.handleChatSocket)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/tab/{tab}", s.handleAdminTab)
			r.Post("/edit/{kind}/{id}", s.handleAdminEdit)
			r.Post("/edit/cancel", s.handleAdminCancel)
			r.Post("/resources", s.handleSaveResource)
			r.Post("/resources/{id}/delete", s.handleDeleteResource)
			r.Post("/stories", s.handleSaveStory)
			r.Post("/stories/{id}/delete", s.handleDeleteStory)
		})

		r.Route("/api", func(r chi.Router) {
			r.Get("/news", s.apiNews)
			r.Get("/resources", s.apiResources)
			r.Get("/resources/search", s.apiSearch)
			r.Get("/resources/suggest", s.apiSuggest)
			r.Post("/assist", s.apiAssist)
			r.Get("/stories", s.apiStories)
			r.Get("/mode", s.apiMode)
		})
		if s.Inbox != nil && s.Notify != nil {
			notifications.RegisterRoutes(r, s.Inbox, s.Notify, s.requireAdminAPI)
		}
		if s.Audit != nil {
			audit.RegisterRoutes(r, s.Audit, s.requireAdminAPI)
		}
	})
}

// current returns the request's session. The session middleware always
// runs first.
func current(ctx context.Context) *session.Session {
	return session.FromContext(ctx)
}
