package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

var errNoSession = errors.New("no session in request context")

// pageData is handed to every page template.
type pageData struct {
	Lang  i18n.Lang
	User  *identity.User
	State view.State
	S     session.Data
	Demo  bool // persistence is on the local substitute
	Live  mode.Flags
	Page  any
}

type navItem struct {
	View   view.View
	Key    string
	Active bool
}

type layoutData struct {
	Lang        i18n.Lang
	Languages   []i18n.Language
	User        *identity.User
	View        view.View
	Nav         []navItem
	Flashes     []session.Flash
	Banner      bool
	Missing     []string
	Degraded    bool
	Reason      string
	Welcome     bool
	Credentials []mode.Credential
	Body        template.HTML
}

var navViews = []navItem{
	{View: view.Home, Key: "nav.home"},
	{View: view.About, Key: "nav.about"},
	{View: view.Stories, Key: "nav.stories"},
	{View: view.Resources, Key: "nav.resources"},
	{View: view.Contact, Key: "nav.contact"},
}

// builder computes the view-specific part of a page.
type builder func(ctx context.Context, sess *session.Session, d session.Data) (any, error)

// page turns a template and an optional builder into a view renderer.
func (s *Site) page(name string, build builder) view.RenderFunc {
	return func(ctx context.Context, w io.Writer, st view.State) error {
		sess := current(ctx)
		if sess == nil {
			return errNoSession
		}
		d := sess.Snapshot()
		d.State = st
		pd := pageData{
			Lang:  d.Lang,
			User:  d.User,
			State: st,
			S:     d,
			Demo:  s.Library.Demo(sess.Fallback),
			Live:  s.Flags,
		}
		if build != nil {
			p, err := build(ctx, sess, d)
			if err != nil {
				return err
			}
			pd.Page = p
		}
		return s.tmpl.ExecuteTemplate(w, name, pd)
	}
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	d, flashes := sess.TakeFlashes()

	var body bytes.Buffer
	res := s.views.RenderCurrent(r.Context(), &body, d.State)

	ld := layoutData{
		Lang:      d.Lang,
		Languages: i18n.Languages(),
		User:      d.User,
		View:      res.View,
		Flashes:   flashes,
		Body:      template.HTML(body.String()),
	}
	if res.Chrome {
		for _, n := range navViews {
			n.Active = n.View == res.View
			ld.Nav = append(ld.Nav, n)
		}
		ld.Degraded = sess.Fallback.Active()
		ld.Reason = sess.Fallback.Reason()
		ld.Missing = s.Flags.Missing()
		ld.Banner = (s.Flags.Limited() || ld.Degraded) && !d.BannerDismissed
		ld.Welcome = s.Flags.Limited() && !d.WelcomeDismissed
		ld.Credentials = s.Flags.Credentials()
	}

	name := "layout"
	if !res.Chrome {
		name = "bare"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.tmpl.ExecuteTemplate(w, name, ld); err != nil {
		s.log.Error().Err(err).Str("view", string(res.View)).Msg("layout rendering error")
	}
}

// redirectPage sends the browser to the renderer of the current view.
func redirectPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/page", http.StatusSeeOther)
}

// navigate applies a Navigate action and clears per-page confirmations.
func navigate(sess *session.Session, target view.View, category string) {
	sess.Update(func(d *session.Data) {
		d.Success = ""
		d.AdminEdit = session.Edit{}
	})
	sess.Dispatch(view.Navigate{Target: target, Category: category})
}

// flash queues a translated message.
func flash(sess *session.Session, level, key string) {
	sess.AddFlash(level, i18n.T(sess.Snapshot().Lang, key))
}
