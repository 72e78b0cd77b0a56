package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/media"
	"github.com/voicethroughimage/vti/internal/notifications"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// maxFormMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const maxFormMemory = 32 << 20

func (s *Site) handleAssist(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		redirectPage(w, r)
		return
	}
	answer := s.Assistant.ResourceAssistance(r.Context(), query, r.FormValue("location"))
	sess.Update(func(d *session.Data) {
		d.AssistQuery = query
		d.AssistAnswer = answer
	})
	navigate(sess, view.Resources, "")
	redirectPage(w, r)
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	q := strings.TrimSpace(r.FormValue("q"))
	sess.Update(func(d *session.Data) { d.SearchQuery = q })
	navigate(sess, view.Resources, "")
	redirectPage(w, r)
}

func (s *Site) handleStoryFilter(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	sess.Update(func(d *session.Data) {
		if t := content.StoryType(r.FormValue("type")); t.Valid() {
			d.StoryType = string(t)
		}
		if c := r.FormValue("category"); c == content.CategoryAll || content.StoryCategory(c).Valid() {
			d.StoryCategory = c
		}
	})
	redirectPage(w, r)
}

// handleSubmitStory uploads the attached media, records the story and
// notifies staff.
func (s *Site) handleSubmitStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := current(ctx)
	u := sess.User()
	fail := func(key string) {
		flash(sess, session.FlashError, key)
		redirectPage(w, r)
	}

	if u == nil && !s.Library.Demo(sess.Fallback) {
		flash(sess, session.FlashError, "submit.login")
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUpload*4+(1<<20))
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		s.log.Warn().Err(err).Msg("parsing story submission")
		fail("submit.bad_file")
		return
	}
	defer r.MultipartForm.RemoveAll()

	sub := content.Submission{
		Title:       r.FormValue("title"),
		Category:    content.StoryCategory(r.FormValue("category")),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		SignedIn:    u != nil,
	}
	var uid string
	if u != nil {
		uid, sub.UserID, sub.UserName = u.ID, u.ID, u.Name
	}

	preview := false
	for _, fh := range r.MultipartForm.File["media"] {
		up, err := media.FromFileHeader(fh, s.MaxUpload)
		if err != nil {
			if errors.Is(err, media.ErrEmpty) {
				continue
			}
			s.log.Warn().Err(err).Str("file", fh.Filename).Msg("rejecting upload")
			fail("submit.bad_file")
			return
		}
		stored, err := s.Media.Store(ctx, sess.Fallback, uid, up)
		if err != nil {
			s.log.Error().Err(err).Str("file", fh.Filename).Msg("storing upload")
			fail("common.error")
			return
		}
		preview = preview || stored.Preview
		switch stored.Kind {
		case media.KindVideo:
			sub.VideoURLs = append(sub.VideoURLs, stored.URL)
		case media.KindAudio:
			sub.AudioURLs = append(sub.AudioURLs, stored.URL)
		default:
			sub.PhotoURLs = append(sub.PhotoURLs, stored.URL)
		}
	}

	res, err := s.Library.SubmitStory(ctx, sess.Fallback, sub)
	switch {
	case errors.Is(err, content.ErrLoginRequired):
		flash(sess, session.FlashError, "submit.login")
		navigate(sess, view.Login, "")
		redirectPage(w, r)
		return
	case errors.Is(err, content.ErrNoMedia):
		fail("submit.no_media")
		return
	case err != nil:
		s.log.Error().Err(err).Msg("submitting story")
		fail("common.error")
		return
	}

	if s.Notify != nil {
		note := notifications.Submission{
			Kind:    notifications.KindStory,
			Name:    res.Story.UserName,
			Subject: res.Story.Title,
			Body:    res.Story.Description,
			Fields: map[string]string{
				"id":       res.Story.ID,
				"type":     string(res.Story.Type),
				"category": string(res.Story.Category),
				"location": res.Story.Location,
			},
		}
		if u != nil {
			note.Email = u.Email
		}
		if _, err := s.Notify.Submit(ctx, note); err != nil {
			s.log.Error().Err(err).Msg("recording story notification")
		}
	}

	if res.Preview || preview {
		flash(sess, session.FlashSuccess, "submit.preview")
	} else {
		flash(sess, session.FlashSuccess, "submit.success")
	}
	navigate(sess, view.Stories, "")
	redirectPage(w, r)
}

func (s *Site) handleVolunteer(w http.ResponseWriter, r *http.Request) {
	s.outreach(w, r, notifications.KindVolunteer, view.Volunteer, notifications.Submission{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("message"),
		Fields: map[string]string{
			"phone": strings.TrimSpace(r.FormValue("phone")),
			"role":  strings.TrimSpace(r.FormValue("role")),
		},
	})
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	s.outreach(w, r, notifications.KindContact, view.Contact, notifications.Submission{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Body:    r.FormValue("message"),
	})
}

// outreach records a public form and shows its confirmation screen.
// Delivery problems never reach the visitor.
func (s *Site) outreach(w http.ResponseWriter, r *http.Request, kind notifications.Kind, v view.View, sub notifications.Submission) {
	sess := current(r.Context())
	sub.Kind = kind
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	if sub.Name == "" || sub.Email == "" {
		flash(sess, session.FlashError, "common.error")
		navigate(sess, v, "")
		redirectPage(w, r)
		return
	}
	if s.Notify != nil {
		if _, err := s.Notify.Submit(r.Context(), sub); err != nil {
			s.log.Error().Err(err).Str("kind", string(kind)).Msg("recording submission")
		}
	}
	navigate(sess, v, "")
	sess.Update(func(d *session.Data) { d.Success = string(kind) })
	redirectPage(w, r)
}

// handleChatSend is the form fallback of the chat socket.
func (s *Site) handleChatSend(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	lang := sess.Snapshot().Lang
	conv := sess.Conversation(i18n.T(lang, "chat.welcome"))
	if err := conv.Send(r.Context(), s.Assistant, r.FormValue("message"), nil); err != nil && !errors.Is(err, assistant.ErrEmptyMessage) {
		s.log.Warn().Err(err).Msg("chat message failed")
		sess.AddFlash(session.FlashError, chatError(lang, err))
	}
	navigate(sess, view.Chat, "")
	redirectPage(w, r)
}

func (s *Site) handleChatReset(w http.ResponseWriter, r *http.Request) {
	current(r.Context()).ResetConversation()
	redirectPage(w, r)
}

// chatError is the text shown for a failed chat turn. A missing key is
// reported as such so the visitor is not left waiting.
func chatError(l i18n.Lang, err error) string {
	if errors.Is(err, assistant.ErrAPIKeyMissing) {
		return assistant.ErrAPIKeyMissing.Error()
	}
	return i18n.T(l, "chat.error")
}
