package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicethroughimage/vti/internal/apperr"
	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/db"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/llm"
	"github.com/voicethroughimage/vti/internal/media"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/notifications"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

const adminEmail = "staff@voicethroughimage.org"

type fakeGen struct {
	mu          sync.Mutex
	completions int
	chunks      []string
}

func (f *fakeGen) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	f.completions++
	f.mu.Unlock()
	return &llm.CompletionResponse{
		Content:   "Shelter beds expanded in Oakland.",
		Citations: []llm.Citation{{Title: "City News", URI: "https://example.org/news"}},
	}, nil
}

func (f *fakeGen) NewChat(context.Context, llm.ChatConfig) (llm.Chat, error) {
	return fakeChat{chunks: f.chunks}, nil
}

func (f *fakeGen) Name() string { return "fake" }

func (f *fakeGen) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.completions
}

type fakeChat struct{ chunks []string }

func (c fakeChat) Send(context.Context, string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, ch := range c.chunks {
			if !yield(ch, nil) {
				return
			}
		}
	}
}

// brokenStore fails like an unreachable Firestore.
type brokenStore struct{}

func (brokenStore) Persist(context.Context, string, map[string]any) (string, error) {
	return "", apperr.Transient("firestore", errors.New("unavailable"))
}
func (brokenStore) Query(context.Context, string) ([]content.Document, error) {
	return nil, apperr.Transient("firestore", errors.New("unavailable"))
}
func (brokenStore) Update(context.Context, string, string, map[string]any) error {
	return apperr.Transient("firestore", errors.New("unavailable"))
}
func (brokenStore) Delete(context.Context, string, string) error {
	return apperr.Transient("firestore", errors.New("unavailable"))
}

type setup struct {
	flags mode.Flags
	live  content.DocumentStore
	gen   llm.TextGenerator
}

type fixture struct {
	site   *Site
	srv    *httptest.Server
	client *http.Client
	inbox  *notifications.Store
	notify *notifications.Dispatcher
}

func newFixture(t *testing.T, st setup) *fixture {
	t.Helper()

	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	log := zerolog.Nop()
	uploads := t.TempDir()
	local, err := media.NewLocalUploader(uploads, "/uploads", 0)
	require.NoError(t, err)

	inbox := notifications.NewStore(database)
	notify := notifications.NewDispatcher(inbox, notifications.Options{Log: log})

	site, err := New(Deps{
		Flags:    st.flags,
		Sessions: session.NewManager(session.Options{Secret: "0123456789abcdef0123456789abcdef", Log: log}),
		Auth:     identity.NewDemo(identity.NewAdminPolicy("admin", []string{adminEmail})),
		Library: content.NewLibrary(content.Options{
			Flags: st.flags,
			Live:  st.live,
			Local: content.NewLocalStore(database),
			Log:   log,
		}),
		Media:      media.NewService(st.flags, nil, local, log),
		Assistant:  assistant.New(st.gen, "test-model", log),
		Notify:     notify,
		Inbox:      inbox,
		Audit:      audit.NewStore(database),
		UploadsDir: uploads,
		Log:        log,
	})
	require.NoError(t, err)

	r := chi.NewRouter()
	site.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	t.Cleanup(notify.Wait)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &fixture{site: site, srv: srv, client: &http.Client{Jar: jar}, inbox: inbox, notify: notify}
}

func (f *fixture) get(t *testing.T, path string) string {
	t.Helper()
	resp, err := f.client.Get(f.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	return string(body)
}

func (f *fixture) post(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := f.client.PostForm(f.srv.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// postNoFollow posts without rendering the next page, so the page's own
// reads cannot change session state before the caller inspects it.
func (f *fixture) postNoFollow(t *testing.T, path string) {
	t.Helper()
	c := *f.client
	c.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	resp, err := c.PostForm(f.srv.URL+path, nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func (f *fixture) getJSON(t *testing.T, path string, v any) {
	t.Helper()
	resp, err := f.client.Get(f.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (f *fixture) login(t *testing.T, email string) {
	t.Helper()
	f.post(t, "/auth/login", url.Values{"email": {email}, "password": {"secret"}})
}

func TestLaunchWithViewParam(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.get(t, "/?view=resources")
	for _, label := range []string{"Shelter", "Food Bank", "Legal Aid", "Mental Health", "Chinese Services", "Domestic Violence"} {
		assert.Contains(t, body, label)
	}
	assert.Equal(t, 6, strings.Count(body, `class="category-card"`))

	body = f.get(t, "/?view=nonsense")
	assert.Contains(t, body, `class="hero"`)
}

func TestEveryViewHasPage(t *testing.T) {
	f := newFixture(t, setup{})
	for _, v := range view.All() {
		assert.True(t, f.site.Views().Handles(v), v.String())
	}
}

func TestNavigateAndUnknownView(t *testing.T) {
	f := newFixture(t, setup{})

	assert.Contains(t, f.get(t, "/go/about"), `class="page-head"`)
	assert.Contains(t, f.get(t, "/go/resource-category?category=Shelter"), "Emergency housing")
	assert.Contains(t, f.get(t, "/go/not-a-view"), `class="hero"`)
}

func TestPresentationHasNoChrome(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.get(t, "/go/presentation")
	assert.NotContains(t, body, `class="navbar"`)
	assert.NotContains(t, body, `class="footer"`)
	assert.Contains(t, body, "1 / 16")

	body = f.post(t, "/presentation/next", nil)
	assert.Contains(t, body, "2 / 16")
	body = f.post(t, "/presentation/prev", nil)
	body = f.post(t, "/presentation/prev", nil)
	assert.Contains(t, body, "1 / 16")

	body = f.get(t, "/go/about")
	assert.Contains(t, body, `class="navbar"`)
	assert.Contains(t, body, `class="footer"`)
}

func TestRenderFaultIsContained(t *testing.T) {
	f := newFixture(t, setup{})
	f.site.Views().Handle(view.Donate, func(context.Context, io.Writer, view.State) error {
		panic("boom")
	})

	body := f.get(t, "/go/donate")
	assert.Contains(t, body, view.FaultMessage)
	assert.Contains(t, body, `class="navbar"`)
}

func TestDemoBannerAndWelcome(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.get(t, "/")
	assert.Contains(t, body, mode.LabelAIMissing)
	assert.Contains(t, body, mode.LabelDBMissing)
	assert.Contains(t, body, "GEMINI_API_KEY")
	assert.Contains(t, body, "MISSING")
	assert.Contains(t, body, "visible to every visitor of this site")

	f.post(t, "/welcome/dismiss", nil)
	body = f.post(t, "/banner/dismiss", nil)
	assert.NotContains(t, body, "GEMINI_API_KEY")
	assert.NotContains(t, body, `class="demo-banner"`)
}

func TestDemoLoginAcceptsAnyCredentials(t *testing.T) {
	gofakeit.Seed(7)
	for i := 0; i < 5; i++ {
		f := newFixture(t, setup{})
		email := gofakeit.Email()
		resp, err := f.client.PostForm(f.srv.URL+"/auth/login", url.Values{
			"email":    {email},
			"password": {gofakeit.Password(true, true, true, false, false, 10)},
		})
		require.NoError(t, err)
		resp.Body.Close()

		body := f.get(t, "/go/profile")
		assert.Contains(t, body, email)
		assert.Contains(t, body, identity.DemoUserName)
	}
}

func TestLogoutAndProfileRequiresLogin(t *testing.T) {
	f := newFixture(t, setup{})
	assert.Contains(t, f.get(t, "/go/profile"), `action="/auth/login"`)

	f.login(t, "ana@example.org")
	body := f.post(t, "/auth/logout", nil)
	assert.Contains(t, body, "You have been signed out.")
	assert.Contains(t, f.get(t, "/go/profile"), `action="/auth/login"`)
}

func TestGoogleSignInDemo(t *testing.T) {
	f := newFixture(t, setup{})
	f.get(t, "/auth/google")
	assert.Contains(t, f.get(t, "/go/profile"), identity.DemoGoogleEmail)
}

func TestAdminGuard(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.get(t, "/go/admin-dashboard")
	assert.Contains(t, body, `class="hero"`)

	f.login(t, "visitor@example.org")
	body = f.post(t, "/admin/resources", url.Values{"name": {"X"}, "type": {"Shelter"}, "region": {"North"}})
	assert.Contains(t, body, "Admin access required.")
	assert.Contains(t, body, `class="hero"`)

	resp, err := f.client.Get(f.srv.URL + "/api/admin/submissions/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminCreatesResource(t *testing.T) {
	f := newFixture(t, setup{})
	f.login(t, adminEmail)

	body := f.get(t, "/go/admin-dashboard")
	assert.Contains(t, body, "Admin Dashboard")

	body = f.post(t, "/admin/resources", url.Values{
		"name":        {"Harbor Night Shelter"},
		"type":        {"Shelter"},
		"region":      {"South"},
		"description": {"Overnight beds"},
		"contact":     {"555-0100"},
		"location":    {"San Pedro"},
	})
	assert.Contains(t, body, "Saved successfully.")
	assert.Contains(t, body, "Preview mode")
	assert.Contains(t, body, "Harbor Night Shelter")

	var res resourcesResponse
	f.getJSON(t, "/api/resources?category=Shelter", &res)
	found := false
	for _, r := range res.Resources {
		if r.Name == "Harbor Night Shelter" {
			found = true
			assert.True(t, r.IsDynamic)
		}
	}
	assert.True(t, found)

	body = f.post(t, "/admin/resources", url.Values{"name": {""}, "type": {"Shelter"}, "region": {"South"}})
	assert.Contains(t, body, "name is required")

	var entries []audit.Entry
	f.getJSON(t, "/api/admin/audit/", &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionResourceCreated, entries[0].Action)
	assert.Equal(t, adminEmail, entries[0].ActorEmail)
	assert.True(t, entries[0].Preview)

	body = f.post(t, "/admin/tab/activity", nil)
	assert.Contains(t, body, "resource_created")
}

func TestAdminStoriesFallBackToMocks(t *testing.T) {
	f := newFixture(t, setup{})
	f.login(t, adminEmail)
	f.get(t, "/go/admin-dashboard")

	body := f.post(t, "/admin/tab/stories", nil)
	for _, s := range content.MockStories("en") {
		assert.Contains(t, body, s.Title)
	}
}

func TestResourceAssistDemo(t *testing.T) {
	f := newFixture(t, setup{})
	body := f.post(t, "/resources/assist", url.Values{"query": {"shelter tonight"}})
	assert.Contains(t, body, "演示模式")
}

func TestResourceSearchAndSuggest(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.post(t, "/resources/search", url.Values{"q": {"food"}})
	assert.Contains(t, body, `class="resource-card`)

	var sug map[string][]string
	f.getJSON(t, "/api/resources/suggest?q=f", &sug)
	assert.Empty(t, sug["suggestions"])
	f.getJSON(t, "/api/resources/suggest?q=food", &sug)
	assert.NotEmpty(t, sug["suggestions"])
	assert.LessOrEqual(t, len(sug["suggestions"]), 5)
}

func TestVolunteerAndContact(t *testing.T) {
	f := newFixture(t, setup{})

	body := f.post(t, "/volunteer", url.Values{
		"name": {"Lin"}, "email": {"lin@example.org"}, "phone": {"555"}, "role": {"Photographer"}, "message": {"Hi"},
	})
	assert.NotContains(t, body, `action="/volunteer"`)

	body = f.post(t, "/contact", url.Values{"name": {""}, "email": {"x@example.org"}})
	assert.Contains(t, body, `action="/contact"`)

	f.post(t, "/contact", url.Values{"name": {"Sam"}, "email": {"sam@example.org"}, "subject": {"General"}, "message": {"Hello"}})

	f.notify.Wait()
	subs, err := f.inbox.List(context.Background(), notifications.ListFilter{})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, notifications.KindContact, subs[0].Kind)
	assert.Equal(t, "Photographer", subs[1].Fields["role"])
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)
}

func TestSubmitStoryDemo(t *testing.T) {
	f := newFixture(t, setup{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Morning on Fifth Street")
	mw.WriteField("category", "Homelessness")
	mw.WriteField("description", "A portrait series.")
	fw, err := mw.CreateFormFile("media", "street.png")
	require.NoError(t, err)
	fw.Write(pngBytes())
	require.NoError(t, mw.Close())

	resp, err := f.client.Post(f.srv.URL+"/stories/submit", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "preview mode")
	assert.Contains(t, string(body), "other visitors of this site can see it")

	var stories struct {
		Stories []content.Story `json:"stories"`
	}
	f.getJSON(t, "/api/stories?type=photo", &stories)
	require.NotEmpty(t, stories.Stories)
	assert.Equal(t, "Morning on Fifth Street", stories.Stories[0].Title)
	assert.True(t, strings.HasPrefix(stories.Stories[0].ImageURL, "/uploads/guest/"))

	f.notify.Wait()
	subs, err := f.inbox.List(context.Background(), notifications.ListFilter{Kind: notifications.KindStory})
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubmitStoryWithoutMedia(t *testing.T) {
	f := newFixture(t, setup{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "No files")
	require.NoError(t, mw.Close())

	resp, err := f.client.Post(f.srv.URL+"/stories/submit", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "Please attach at least one")
}

func TestNewsCachedPerSession(t *testing.T) {
	gen := &fakeGen{}
	f := newFixture(t, setup{flags: mode.Flags{LiveAI: true}, gen: gen})

	var first, second assistant.NewsResult
	f.getJSON(t, "/api/news?lang=en", &first)
	f.getJSON(t, "/api/news?lang=en", &second)
	assert.Equal(t, 1, gen.calls())
	assert.Equal(t, first, second)
	assert.Equal(t, "City News", first.Sources[0].Title)

	f.getJSON(t, "/api/news?lang=zh-TW", &first)
	assert.Equal(t, 2, gen.calls())
}

func TestNewsFallbackWithoutKey(t *testing.T) {
	f := newFixture(t, setup{})
	var res assistant.NewsResult
	f.getJSON(t, "/api/news?lang=en", &res)
	assert.True(t, res.IsFallback)
	assert.Len(t, res.Sources, 3)
}

func TestModeAPIAndRetry(t *testing.T) {
	f := newFixture(t, setup{flags: mode.Flags{LiveIdentity: true}, live: brokenStore{}})

	var m modeResponse
	f.getJSON(t, "/api/mode", &m)
	assert.False(t, m.Degraded)
	assert.Equal(t, []string{mode.LabelAIMissing}, m.Missing)
	assert.Equal(t, "LOADED", m.Keys["VITE_FIREBASE_API_KEY"])

	f.login(t, adminEmail)
	body := f.post(t, "/admin/resources", url.Values{"name": {"Live Try"}, "type": {"Shelter"}, "region": {"North"}})
	assert.Contains(t, body, "Saved successfully.")

	f.getJSON(t, "/api/mode", &m)
	assert.True(t, m.Degraded)
	assert.NotEmpty(t, m.Reason)

	f.postNoFollow(t, "/mode/retry")
	f.getJSON(t, "/api/mode", &m)
	assert.False(t, m.Degraded)
}

func dial(t *testing.T, f *fixture) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestChatSocketStreams(t *testing.T) {
	f := newFixture(t, setup{flags: mode.Flags{LiveAI: true}, gen: &fakeGen{chunks: []string{"Hello", ", friend."}}})
	conn := dial(t, f)

	require.NoError(t, conn.WriteJSON(chatRequest{Type: "message", Content: "hi"}))

	var got []string
	for {
		var resp chatResponse
		require.NoError(t, conn.ReadJSON(&resp))
		if resp.Type == "done" {
			break
		}
		require.Equal(t, "chunk", resp.Type)
		got = append(got, resp.Content)
	}
	assert.Equal(t, []string{"Hello", ", friend."}, got)
}

func TestChatSocketWithoutKey(t *testing.T) {
	f := newFixture(t, setup{})
	conn := dial(t, f)

	require.NoError(t, conn.WriteJSON(chatRequest{Type: "message", Content: "hi"}))
	var resp chatResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "error", resp.Type)
	assert.Equal(t, "API Key missing", resp.Content)

	require.NoError(t, conn.WriteJSON(chatRequest{Type: "bogus", Content: "hi"}))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.Content, "unknown message type")
}

func TestLanguageSwitch(t *testing.T) {
	f := newFixture(t, setup{})
	body := f.post(t, "/lang", url.Values{"lang": {"zh-TW"}})
	assert.Contains(t, body, `lang="zh-TW"`)
	assert.Contains(t, body, "影像之聲")
}
