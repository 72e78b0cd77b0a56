package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// handleLaunch is a fresh load of the site: the view is reset and the
// optional view parameter applied.
func (s *Site) handleLaunch(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	sess.Update(func(d *session.Data) {
		d.Success = ""
		d.AdminEdit = session.Edit{}
	})
	st := sess.Dispatch(view.Launch{Param: r.URL.Query().Get("view")})
	s.guardView(sess, st.Current)
	s.handlePage(w, r)
}

func (s *Site) handleNavigate(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	target, ok := view.Parse(chi.URLParam(r, "view"))
	if !ok {
		target = view.Home
	}
	navigate(sess, target, r.URL.Query().Get("category"))
	s.guardView(sess, target)
	redirectPage(w, r)
}

// guardView sends visitors away from pages they may not see.
func (s *Site) guardView(sess *session.Session, v view.View) {
	u := sess.User()
	switch v {
	case view.AdminDashboard:
		if u == nil || !u.Admin {
			if u != nil {
				flash(sess, session.FlashError, "admin.forbidden")
			}
			navigate(sess, view.Home, "")
		}
	case view.Profile:
		if u == nil {
			navigate(sess, view.Login, "")
		}
	}
}

func (s *Site) handleLang(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	if l, ok := i18n.Parse(r.FormValue("lang")); ok {
		sess.Update(func(d *session.Data) { d.Lang = l })
		sess.ResetConversation()
	}
	redirectPage(w, r)
}

func (s *Site) handleBannerDismiss(w http.ResponseWriter, r *http.Request) {
	current(r.Context()).Update(func(d *session.Data) { d.BannerDismissed = true })
	redirectPage(w, r)
}

func (s *Site) handleWelcomeDismiss(w http.ResponseWriter, r *http.Request) {
	current(r.Context()).Update(func(d *session.Data) { d.WelcomeDismissed = true })
	redirectPage(w, r)
}

// handleRetry is "Retry Connection": the session leaves demo mode and the
// next operation tries the live services again.
func (s *Site) handleRetry(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	sess.Fallback.Reset()
	sess.Update(func(d *session.Data) { d.BannerDismissed = false })
	s.log.Info().Str("session", sess.ID).Msg("session returned to live mode")
	redirectPage(w, r)
}

func (s *Site) handleSlide(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	switch chi.URLParam(r, "dir") {
	case "next":
		sess.Dispatch(view.NextSlide{Count: DeckSize()})
	case "prev":
		sess.Dispatch(view.PrevSlide{Count: DeckSize()})
	case "exit":
		navigate(sess, view.Home, "")
	default:
		http.NotFound(w, r)
		return
	}
	redirectPage(w, r)
}
