package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/voicethroughimage/vti/internal/db"
)

// LocalStore is the SQLite substitute used in demo mode and after a session
// has been degraded. IDs follow the demo convention ("demo-<millis>" for
// resources, "demo-story-<millis>" for stories) and are strictly increasing.
type LocalStore struct {
	db  *db.DB
	now func() time.Time

	mu   sync.Mutex
	last int64
}

// NewLocalStore creates a store over an opened database.
func NewLocalStore(d *db.DB) *LocalStore {
	return &LocalStore{db: d, now: time.Now}
}

func idPrefix(collection string) string {
	if collection == CollectionStories {
		return "demo-story-"
	}
	return "demo-"
}

// nextMillis returns a creation stamp greater than every earlier one.
func (s *LocalStore) nextMillis() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return ms
}

func (s *LocalStore) Persist(ctx context.Context, collection string, data map[string]any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding %s document: %w", collection, err)
	}
	ms := s.nextMillis()
	id := idPrefix(collection) + strconv.FormatInt(ms, 10)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		collection, id, string(raw), ms, ms)
	if err != nil {
		return "", fmt.Errorf("inserting %s document: %w", collection, err)
	}
	return id, nil
}

func (s *LocalStore) Query(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data, created_at FROM documents WHERE collection = ? ORDER BY created_at DESC, rowid DESC`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id, raw string
			ms      int64
		)
		if err := rows.Scan(&id, &raw, &ms); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", collection, err)
		}
		var data map[string]any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("decoding %s/%s: %w", collection, id, err)
		}
		docs = append(docs, Document{ID: id, Data: data, CreatedAt: time.UnixMilli(ms)})
	}
	return docs, rows.Err()
}

// Update merges data into the stored document.
func (s *LocalStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	defer tx.Rollback()

	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", collection, id, err)
	}

	var current map[string]any
	if err := json.Unmarshal([]byte(raw), &current); err != nil {
		return fmt.Errorf("decoding %s/%s: %w", collection, id, err)
	}
	if current == nil {
		current = map[string]any{}
	}
	for k, v := range data {
		current[k] = v
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", collection, id, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(merged), s.now().UnixMilli(), collection, id)
	if err != nil {
		return fmt.Errorf("updating %s/%s: %w", collection, id, err)
	}
	return tx.Commit()
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *LocalStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	return nil
}

// Count returns the number of documents in collection.
func (s *LocalStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}
	return n, nil
}

// SeedResources stores rs when the resources collection is empty, keeping
// their order (first element newest). It reports how many were written.
func (s *LocalStore) SeedResources(ctx context.Context, rs []Resource) (int, error) {
	n, err := s.Count(ctx, CollectionResources)
	if err != nil || n > 0 {
		return 0, err
	}
	for i := len(rs) - 1; i >= 0; i-- {
		data, err := encode(rs[i])
		if err != nil {
			return 0, err
		}
		if _, err := s.Persist(ctx, CollectionResources, data); err != nil {
			return 0, err
		}
	}
	return len(rs), nil
}
