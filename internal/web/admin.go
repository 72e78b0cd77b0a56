package web

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// requireAdmin navigates non-admins Home.
func (s *Site) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := current(r.Context())
		if u := sess.User(); u == nil || !u.Admin {
			s.log.Warn().Str("path", r.URL.Path).Msg("admin route refused")
			flash(sess, session.FlashError, "admin.forbidden")
			navigate(sess, view.Home, "")
			redirectPage(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Site) requireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := current(r.Context()).User(); u == nil || !u.Admin {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Site) handleAdminTab(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	tab := chi.URLParam(r, "tab")
	if !slices.Contains(s.adminTabs(), tab) {
		tab = tabResources
	}
	sess.Update(func(d *session.Data) {
		d.AdminTab = tab
		d.AdminEdit = session.Edit{}
	})
	redirectPage(w, r)
}

func (s *Site) handleAdminEdit(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != tabResources && kind != tabStories {
		http.NotFound(w, r)
		return
	}
	current(r.Context()).Update(func(d *session.Data) {
		d.AdminTab = kind
		d.AdminEdit = session.Edit{Kind: kind, ID: chi.URLParam(r, "id")}
	})
	redirectPage(w, r)
}

func (s *Site) handleAdminCancel(w http.ResponseWriter, r *http.Request) {
	current(r.Context()).Update(func(d *session.Data) { d.AdminEdit = session.Edit{} })
	redirectPage(w, r)
}

func resourceFromForm(r *http.Request) content.Resource {
	f := func(k string) string { return strings.TrimSpace(r.FormValue(k)) }
	return content.Resource{
		Name:               f("name"),
		NameZhTW:           f("nameZhTW"),
		NameZhCN:           f("nameZhCN"),
		Region:             content.Region(f("region")),
		Type:               content.ResourceType(f("type")),
		Description:        f("description"),
		DescriptionZhTW:    f("descriptionZhTW"),
		DescriptionZhCN:    f("descriptionZhCN"),
		Contact:            f("contact"),
		Location:           f("location"),
		OperatingHours:     f("hours"),
		OperatingHoursZhTW: f("hoursZhTW"),
		OperatingHoursZhCN: f("hoursZhCN"),
		Website:            f("website"),
		IsDynamic:          true,
	}
}

func storyFromForm(r *http.Request) content.Story {
	f := func(k string) string { return strings.TrimSpace(r.FormValue(k)) }
	st := content.Story{
		Type:        content.StoryType(f("type")),
		Title:       f("title"),
		Category:    content.StoryCategory(f("category")),
		Description: f("description"),
		ImageURL:    f("imageUrl"),
		Location:    f("location"),
		AuthorName:  f("author"),
		Date:        f("date"),
	}
	if m := f("mediaUrl"); m != "" {
		switch st.Type {
		case content.StoryVideo:
			st.LocalVideoURL = m
		case content.StoryAudio:
			st.AudioURL = m
		default:
			st.Photos = []string{m}
		}
	}
	return st
}

func (s *Site) handleSaveResource(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	res := resourceFromForm(r)
	var (
		out content.WriteResult
		err error
	)
	rec := audit.Entry{Action: audit.ActionResourceCreated, Summary: res.Name}
	if id := r.FormValue("id"); id != "" {
		rec.Action, rec.TargetID = audit.ActionResourceUpdated, id
		out, err = s.Library.UpdateResource(r.Context(), sess.Fallback, id, res)
	} else {
		out, err = s.Library.CreateResource(r.Context(), sess.Fallback, res)
	}
	s.afterWrite(r, out, err, "admin.success", rec)
	redirectPage(w, r)
}

func (s *Site) handleDeleteResource(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	id := chi.URLParam(r, "id")
	out, err := s.Library.DeleteResource(r.Context(), sess.Fallback, id)
	s.afterWrite(r, out, err, "admin.deleted", audit.Entry{Action: audit.ActionResourceDeleted, TargetID: id})
	redirectPage(w, r)
}

func (s *Site) handleSaveStory(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	st := storyFromForm(r)
	var (
		out content.WriteResult
		err error
	)
	rec := audit.Entry{Action: audit.ActionStoryCreated, Summary: st.Title}
	if id := r.FormValue("id"); id != "" {
		rec.Action, rec.TargetID = audit.ActionStoryUpdated, id
		out, err = s.Library.UpdateStory(r.Context(), sess.Fallback, id, st)
	} else {
		out, err = s.Library.CreateStory(r.Context(), sess.Fallback, st)
	}
	s.afterWrite(r, out, err, "admin.success", rec)
	redirectPage(w, r)
}

func (s *Site) handleDeleteStory(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	id := chi.URLParam(r, "id")
	out, err := s.Library.DeleteStory(r.Context(), sess.Fallback, id)
	s.afterWrite(r, out, err, "admin.deleted", audit.Entry{Action: audit.ActionStoryDeleted, TargetID: id})
	redirectPage(w, r)
}

// afterWrite reports the outcome of a dashboard write and records
// successful ones in the audit trail.
func (s *Site) afterWrite(r *http.Request, out content.WriteResult, err error, okKey string, rec audit.Entry) {
	sess := current(r.Context())
	switch {
	case errors.Is(err, content.ErrInvalid):
		sess.AddFlash(session.FlashError, err.Error())
		return
	case errors.Is(err, content.ErrNotFound):
		flash(sess, session.FlashError, "common.error")
		return
	case err != nil:
		s.log.Error().Err(err).Msg("admin write failed")
		flash(sess, session.FlashError, "common.error")
		return
	}
	sess.Update(func(d *session.Data) { d.AdminEdit = session.Edit{} })
	flash(sess, session.FlashSuccess, okKey)
	if out.Preview {
		flash(sess, session.FlashInfo, "admin.preview_mode")
	}

	if s.Audit == nil {
		return
	}
	if u := sess.User(); u != nil {
		rec.ActorID, rec.ActorEmail = u.ID, u.Email
	}
	if rec.TargetID == "" {
		rec.TargetID = out.ID
	}
	rec.Preview = out.Preview
	if err := s.Audit.Log(r.Context(), rec); err != nil {
		s.log.Error().Err(err).Str("action", string(rec.Action)).Msg("recording audit entry")
	}
}
