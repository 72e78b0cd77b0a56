package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func testSubmission(id string) Submission {
	return Submission{
		ID:      id,
		Kind:    KindVolunteer,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Community Outreach",
		Body:    "I speak Cantonese and can help on weekends.",
		Fields:  map[string]string{"phone": "(555) 123-4567"},
	}
}

type fakeTelegram struct {
	mu   sync.Mutex
	sent []*bot.SendMessageParams
	err  error
}

func (f *fakeTelegram) SendMessage(_ context.Context, p *bot.SendMessageParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, p)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Message{ID: len(f.sent)}, nil
}

func TestStoreCreate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, testSubmission("s-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByID(ctx, "s-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Jane Doe" || got.Kind != KindVolunteer {
		t.Errorf("got %+v", got)
	}
	if got.Delivered {
		t.Error("expected Delivered = false")
	}
	if got.Fields["phone"] != "(555) 123-4567" {
		t.Errorf("Fields = %v", got.Fields)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStoreCreateAutoIDAndKind(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	sub := testSubmission("")
	got, err := store.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID == "" {
		t.Error("expected generated ID")
	}

	sub.Kind = "spam"
	if _, err := store.Create(ctx, sub); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := setupTestStore(t)
	_, err := store.GetByID(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListFilters(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, k := range []Kind{KindVolunteer, KindContact, KindContact} {
		s := testSubmission("")
		s.Kind = k
		s.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if _, err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}
	if !all[0].CreatedAt.After(all[2].CreatedAt) {
		t.Error("expected newest first")
	}

	contacts, _ := store.List(ctx, ListFilter{Kind: KindContact})
	if len(contacts) != 2 {
		t.Errorf("expected 2 contacts, got %d", len(contacts))
	}

	recent, _ := store.List(ctx, ListFilter{Since: base.Add(90 * time.Minute)})
	if len(recent) != 1 {
		t.Errorf("expected 1 recent, got %d", len(recent))
	}

	page, _ := store.List(ctx, ListFilter{Offset: 1})
	if len(page) != 2 {
		t.Errorf("expected 2 after offset, got %d", len(page))
	}
}

func TestStoreMarkDelivered(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	store.Create(ctx, testSubmission("s-1"))
	store.Create(ctx, testSubmission("s-2"))

	if err := store.MarkDelivered(ctx, "s-1"); err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}
	pending, err := store.GetPending(ctx)
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "s-2" {
		t.Errorf("pending = %+v", pending)
	}
	if err := store.MarkDelivered(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDispatcherDeliversToAllChannels(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var (
		mu       sync.Mutex
		received []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		received = body
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := &fakeTelegram{}
	d := NewDispatcher(store, Options{
		Webhooks: []string{server.URL},
		Telegram: tg,
		ChatID:   42,
		Log:      zerolog.Nop(),
	})
	if d.Channels() != 2 {
		t.Fatalf("Channels = %d, want 2", d.Channels())
	}

	sub, err := d.Submit(ctx, testSubmission("wh-1"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	d.Wait()

	mu.Lock()
	var got Submission
	if err := json.Unmarshal(received, &got); err != nil {
		t.Fatalf("unmarshalling webhook payload: %v", err)
	}
	mu.Unlock()
	if got.Name != sub.Name {
		t.Errorf("webhook payload Name = %q", got.Name)
	}

	if len(tg.sent) != 1 {
		t.Fatalf("telegram messages = %d", len(tg.sent))
	}
	if tg.sent[0].ChatID != int64(42) {
		t.Errorf("ChatID = %v", tg.sent[0].ChatID)
	}
	if !strings.HasPrefix(tg.sent[0].Text, "New volunteer application") {
		t.Errorf("Text = %q", tg.sent[0].Text)
	}

	stored, err := store.GetByID(ctx, "wh-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.Delivered {
		t.Error("expected submission to be marked delivered")
	}
}

func TestDispatcherFailureKeepsPending(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	tg := &fakeTelegram{err: errors.New("forbidden")}
	d := NewDispatcher(store, Options{Webhooks: []string{server.URL}, Telegram: tg, ChatID: 1, Log: zerolog.Nop()})

	if _, err := d.Submit(ctx, testSubmission("f-1")); err != nil {
		t.Fatalf("Submit should not surface delivery failures: %v", err)
	}
	d.Wait()

	pending, _ := store.GetPending(ctx)
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending, got %d", len(pending))
	}

	tg.err = nil
	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	n, err := d.RetryPending(ctx)
	if err != nil || n != 1 {
		t.Fatalf("RetryPending = %d, %v", n, err)
	}
	d.Wait()
	pending, _ = store.GetPending(ctx)
	if len(pending) != 0 {
		t.Errorf("expected nothing pending, got %d", len(pending))
	}
}

func TestRetrySkipsChannelsAlreadyDelivered(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var (
		mu   sync.Mutex
		hits int
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tg := &fakeTelegram{err: errors.New("bot was blocked")}
	d := NewDispatcher(store, Options{Webhooks: []string{server.URL}, Telegram: tg, ChatID: 7, Log: zerolog.Nop()})

	if _, err := d.Submit(ctx, testSubmission("p-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	d.Wait()

	done, err := store.DeliveredChannels(ctx, "p-1")
	if err != nil {
		t.Fatalf("DeliveredChannels: %v", err)
	}
	if !done["webhook:"+server.URL] || done[channelTelegram] {
		t.Fatalf("delivered channels = %v", done)
	}

	tg.mu.Lock()
	tg.err = nil
	tg.mu.Unlock()
	if _, err := d.RetryPending(ctx); err != nil {
		t.Fatalf("RetryPending: %v", err)
	}
	d.Wait()

	mu.Lock()
	defer mu.Unlock()
	if hits != 1 {
		t.Errorf("webhook called %d times, want 1", hits)
	}
	if len(tg.sent) != 2 {
		t.Errorf("telegram attempts = %d, want 2", len(tg.sent))
	}
	pending, _ := store.GetPending(ctx)
	if len(pending) != 0 {
		t.Errorf("expected nothing pending, got %d", len(pending))
	}
}

func TestDispatcherWithoutChannelsOnlyRecords(t *testing.T) {
	store := setupTestStore(t)
	d := NewDispatcher(store, Options{Log: zerolog.Nop()})

	if _, err := d.Submit(context.Background(), testSubmission("r-1")); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	d.Wait()
	if _, err := store.GetByID(context.Background(), "r-1"); err != nil {
		t.Errorf("expected submission recorded: %v", err)
	}
}

func TestFormatText(t *testing.T) {
	got := FormatText(Submission{
		Kind:    KindContact,
		Name:    "A",
		Email:   "a@b.org",
		Subject: "General Inquiry",
		Body:    "Hello",
		Fields:  map[string]string{"b": "2", "a": "1"},
	})
	want := "New contact message\n\nName: A\nEmail: a@b.org\nSubject: General Inquiry\na: 1\nb: 2\n\nHello"
	if got != want {
		t.Errorf("FormatText =\n%q\nwant\n%q", got, want)
	}
}

func TestHTTPHandlers(t *testing.T) {
	store := setupTestStore(t)
	d := NewDispatcher(store, Options{Log: zerolog.Nop()})
	ctx := context.Background()

	allow := func(next http.Handler) http.Handler { return next }
	r := chi.NewRouter()
	RegisterRoutes(r, store, d, allow)

	if _, err := store.Create(ctx, testSubmission("api-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var got []Submission
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 submission, got %d", len(got))
		}
	})

	t.Run("get not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions/nonexistent", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("deliver", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/admin/submissions/api-1/deliver", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		got, err := store.GetByID(ctx, "api-1")
		if err != nil || !got.Delivered {
			t.Errorf("expected delivered, got %+v %v", got, err)
		}
	})

	t.Run("guard", func(t *testing.T) {
		deny := func(http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "forbidden", http.StatusForbidden)
			})
		}
		guarded := chi.NewRouter()
		RegisterRoutes(guarded, store, d, deny)
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d", w.Code)
		}
	})
}
