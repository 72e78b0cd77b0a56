package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicethroughimage/vti/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLogAndGetByID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Log(ctx, Entry{
		ID:         "test-1",
		ActorID:    "uid-1",
		ActorEmail: "staff@voicethroughimage.org",
		Action:     ActionResourceCreated,
		TargetID:   "res-42",
		Summary:    "Harbor Night Shelter",
		Preview:    true,
	}))

	got, err := store.GetByID(ctx, "test-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.ActorID)
	assert.Equal(t, ActionResourceCreated, got.Action)
	assert.Equal(t, "res-42", got.TargetID)
	assert.Equal(t, "Harbor Night Shelter", got.Summary)
	assert.True(t, got.Preview)
	assert.WithinDuration(t, time.Now().UTC(), got.Timestamp, time.Minute)
}

func TestLogGeneratesUUID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Log(ctx, Entry{ActorID: "cli", Action: ActionAdminGranted, Summary: "ana@example.org"}))

	entries, err := store.Query(ctx, QueryFilter{ActorID: "cli"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.Empty(t, entries[0].TargetID)
}

func TestQueryFilters(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for _, e := range []Entry{
		{ActorID: "alice", Action: ActionResourceCreated, TargetID: "r1"},
		{ActorID: "bob", Action: ActionResourceDeleted, TargetID: "r1"},
		{ActorID: "alice", Action: ActionStoryUpdated, TargetID: "s1"},
	} {
		require.NoError(t, store.Log(ctx, e))
	}

	tests := []struct {
		name   string
		filter QueryFilter
		want   int
	}{
		{"actor", QueryFilter{ActorID: "alice"}, 2},
		{"action", QueryFilter{Action: ActionResourceDeleted}, 1},
		{"target", QueryFilter{TargetID: "r1"}, 2},
		{"limit", QueryFilter{Limit: 1}, 1},
		{"offset only", QueryFilter{Offset: 2}, 1},
		{"none", QueryFilter{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.Query(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
		})
	}

	entries, err := store.Query(ctx, QueryFilter{})
	require.NoError(t, err)
	assert.Equal(t, ActionStoryUpdated, entries[0].Action, "newest first")
}

func TestDeleteBefore(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Log(ctx, Entry{ActorID: "a", Action: ActionStoryDeleted}))

	n, err := store.DeleteBefore(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.DeleteBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func allow(next http.Handler) http.Handler { return next }

func deny(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Log(context.Background(), Entry{ID: "e1", ActorID: "alice", Action: ActionResourceUpdated}))

	r := chi.NewRouter()
	RegisterRoutes(r, store, allow)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/audit/?actor=alice", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var entries []Entry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/audit/e1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/audit/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	guarded := chi.NewRouter()
	RegisterRoutes(guarded, store, deny)
	w = httptest.NewRecorder()
	guarded.ServeHTTP(w, httptest.NewRequest("GET", "/api/admin/audit/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
