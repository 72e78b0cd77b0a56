package web

import (
	"net/http"
	"strings"

	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// googleLive reports whether "Continue with Google" leaves the site.
func (s *Site) googleLive() bool {
	return s.OAuth != nil && s.Flags.LiveIdentity
}

func (s *Site) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	email := strings.TrimSpace(r.FormValue("email"))
	u, err := s.Auth.SignIn(r.Context(), email, r.FormValue("password"))
	if err != nil {
		s.log.Warn().Err(err).Msg("sign in rejected")
		sess.AddFlash(session.FlashError, identity.Message(err, identity.MsgLoginFailed))
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}
	s.signedIn(sess, u)
	redirectPage(w, r)
}

func (s *Site) handleSignup(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	u, err := s.Auth.SignUp(r.Context(), name, email, r.FormValue("password"))
	if err != nil {
		s.log.Warn().Err(err).Msg("sign up rejected")
		sess.AddFlash(session.FlashError, identity.Message(err, identity.MsgSignupFailed))
		navigate(sess, view.Signup, "")
		redirectPage(w, r)
		return
	}
	if err := s.Auth.SendVerification(r.Context(), u); err != nil {
		s.log.Warn().Err(err).Msg("sending verification e-mail")
	}
	sess.SetUser(u)
	navigate(sess, view.VerifyEmail, "")
	redirectPage(w, r)
}

// signedIn stores u and moves to the page that follows a sign-in.
func (s *Site) signedIn(sess *session.Session, u *identity.User) {
	sess.SetUser(u)
	if !u.Verified {
		navigate(sess, view.VerifyEmail, "")
		return
	}
	navigate(sess, view.Home, "")
}

func (s *Site) handleGoogle(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	if !s.googleLive() {
		u, err := s.Auth.SignInFederated(r.Context(), "")
		if err != nil {
			sess.AddFlash(session.FlashError, identity.Message(err, identity.MsgGoogleFailed))
			redirectPage(w, r)
			return
		}
		s.signedIn(sess, u)
		redirectPage(w, r)
		return
	}
	state := identity.NewState()
	sess.Update(func(d *session.Data) { d.OAuthState = state })
	http.Redirect(w, r, s.OAuth.AuthURL(state), http.StatusFound)
}

func (s *Site) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	var expected string
	sess.Update(func(d *session.Data) {
		expected = d.OAuthState
		d.OAuthState = ""
	})

	q := r.URL.Query()
	if !s.googleLive() || expected == "" || q.Get("state") != expected || q.Get("code") == "" {
		sess.AddFlash(session.FlashError, identity.MsgGoogleFailed)
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}

	idToken, err := s.OAuth.Exchange(r.Context(), q.Get("code"))
	if err == nil {
		var u *identity.User
		if u, err = s.Auth.SignInFederated(r.Context(), idToken); err == nil {
			s.signedIn(sess, u)
			redirectPage(w, r)
			return
		}
	}
	s.log.Warn().Err(err).Msg("google sign in failed")
	sess.AddFlash(session.FlashError, identity.Message(err, identity.MsgGoogleFailed))
	navigate(sess, view.Login, "")
	redirectPage(w, r)
}

func (s *Site) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	if u := sess.User(); u != nil {
		if err := s.Auth.SignOut(r.Context(), u); err != nil {
			s.log.Warn().Err(err).Msg("sign out")
		}
	}
	sess.SetUser(nil)
	sess.ResetConversation()
	flash(sess, session.FlashInfo, "auth.signed_out")
	navigate(sess, view.Home, "")
	redirectPage(w, r)
}

// handleVerify resends the link ("resend") or checks whether the address
// has been confirmed.
func (s *Site) handleVerify(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	u := sess.User()
	if u == nil {
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}

	if r.FormValue("action") == "resend" {
		if err := s.Auth.SendVerification(r.Context(), u); err != nil {
			s.log.Warn().Err(err).Msg("resending verification e-mail")
			flash(sess, session.FlashError, "common.error")
		} else {
			flash(sess, session.FlashSuccess, "auth.verify.sent")
		}
		redirectPage(w, r)
		return
	}

	fresh, err := s.Auth.Reload(r.Context(), u)
	if err != nil {
		s.log.Warn().Err(err).Msg("reloading account")
		flash(sess, session.FlashError, "common.error")
		redirectPage(w, r)
		return
	}
	sess.SetUser(fresh)
	if fresh.Verified {
		navigate(sess, view.Home, "")
	} else {
		flash(sess, session.FlashInfo, "auth.verify.text")
	}
	redirectPage(w, r)
}

func (s *Site) handleProfile(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	u := sess.User()
	if u == nil {
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}
	updated, err := s.Auth.UpdateProfile(r.Context(), u, strings.TrimSpace(r.FormValue("name")), strings.TrimSpace(r.FormValue("avatar")))
	if err != nil {
		s.log.Warn().Err(err).Msg("updating profile")
		sess.AddFlash(session.FlashError, identity.Message(err, i18n.T(sess.Snapshot().Lang, "common.error")))
		redirectPage(w, r)
		return
	}
	sess.SetUser(updated)
	flash(sess, session.FlashSuccess, "profile.saved")
	redirectPage(w, r)
}

func (s *Site) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	u := sess.User()
	if u == nil {
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}
	if err := s.Auth.Delete(r.Context(), u); err != nil {
		s.log.Warn().Err(err).Msg("deleting account")
		sess.AddFlash(session.FlashError, identity.Message(err, i18n.T(sess.Snapshot().Lang, "common.error")))
		redirectPage(w, r)
		return
	}
	sess.SetUser(nil)
	sess.ResetConversation()
	flash(sess, session.FlashInfo, "profile.deleted")
	navigate(sess, view.Home, "")
	redirectPage(w, r)
}
