package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/directory"
	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/mode"
)

// langParam returns the ?lang= value, or the session language.
func langParam(r *http.Request) i18n.Lang {
	if l, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return l
	}
	return current(r.Context()).Snapshot().Lang
}

// apiNews returns the daily brief. The cache key is the lang parameter as
// given, so zh-TW and zh-CN are cached separately.
func (s *Site) apiNews(w http.ResponseWriter, r *http.Request) {
	sess := current(r.Context())
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = string(sess.Snapshot().Lang)
	}
	writeJSON(w, http.StatusOK, sess.News.Get(r.Context(), lang, s.Assistant.DailyNews))
}

type resourcesResponse struct {
	Category  string                      `json:"category,omitempty"`
	Count     int                         `json:"count"`
	Resources []content.LocalizedResource `json:"resources"`
}

func (s *Site) apiResources(w http.ResponseWriter, r *http.Request) {
	l := langParam(r)
	cat := r.URL.Query().Get("category")
	if cat == "" {
		all := localize(directory.All(), l)
		writeJSON(w, http.StatusOK, resourcesResponse{Count: len(all), Resources: all})
		return
	}
	c, ok := directory.LookupCategory(cat)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown category: " + cat})
		return
	}
	rs := append(directory.ByCategory(c.ID), s.Library.DynamicResources(r.Context(), current(r.Context()).Fallback, c.ID)...)
	writeJSON(w, http.StatusOK, resourcesResponse{Category: string(c.ID), Count: len(rs), Resources: localize(rs, l)})
}

func (s *Site) apiSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	rs := localize(directory.Search(q), langParam(r))
	writeJSON(w, http.StatusOK, resourcesResponse{Count: len(rs), Resources: rs})
}

func (s *Site) apiSuggest(w http.ResponseWriter, r *http.Request) {
	out := directory.Suggestions(r.URL.Query().Get("q"))
	if out == nil {
		out = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": out})
}

type assistRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

func (s *Site) apiAssist(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}
	text := s.Assistant.ResourceAssistance(r.Context(), req.Query, req.Location)
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Site) apiStories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := content.StoryFilter{Category: q.Get("category")}
	if t := content.StoryType(q.Get("type")); t.Valid() {
		f.Type = t
	}
	stories := s.Library.PublicStories(r.Context(), current(r.Context()).Fallback, f)
	writeJSON(w, http.StatusOK, map[string]any{"count": len(stories), "stories": stories})
}

type modeResponse struct {
	LiveIdentity bool              `json:"liveIdentity"`
	LiveAI       bool              `json:"liveAI"`
	Degraded     bool              `json:"degraded"`
	Reason       string            `json:"reason,omitempty"`
	Missing      []string          `json:"missing"`
	Keys         map[string]string `json:"keys"`
}

func (s *Site) apiMode(w http.ResponseWriter, r *http.Request) {
	fb := current(r.Context()).Fallback
	resp := modeResponse{
		LiveIdentity: s.Flags.LiveIdentity,
		LiveAI:       s.Flags.LiveAI,
		Degraded:     fb.Active(),
		Reason:       fb.Reason(),
		Missing:      s.Flags.Missing(),
		Keys:         credentialMap(s.Flags.Credentials()),
	}
	if resp.Missing == nil {
		resp.Missing = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func credentialMap(creds []mode.Credential) map[string]string {
	out := make(map[string]string, len(creds))
	for _, c := range creds {
		out[c.Env] = c.Status()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
