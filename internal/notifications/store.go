package notifications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voicethroughimage/vti/internal/db"
)

// ErrNotFound is returned for an unknown submission id.
var ErrNotFound = errors.New("submission not found")

// ListFilter controls which submissions are returned by List.
type ListFilter struct {
	Kind      Kind
	Delivered *bool
	Since     time.Time
	Limit     int
	Offset    int
}

// Store keeps the outreach inbox.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a submission. An empty ID gets a UUID; the stored record
// is returned.
func (s *Store) Create(ctx context.Context, sub Submission) (Submission, error) {
	if !sub.Kind.Valid() {
		return Submission{}, fmt.Errorf("unknown submission kind %q", sub.Kind)
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	sub.CreatedAt = sub.CreatedAt.UTC().Truncate(time.Second)

	fields, err := json.Marshal(sub.Fields)
	if err != nil {
		return Submission{}, fmt.Errorf("marshalling fields: %w", err)
	}

	delivered := 0
	if sub.Delivered {
		delivered = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, kind, name, email, subject, body, fields, created_at, delivered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, string(sub.Kind), sub.Name, sub.Email, sub.Subject, sub.Body,
		string(fields), sub.CreatedAt.Format(time.DateTime), delivered,
	)
	if err != nil {
		return Submission{}, fmt.Errorf("inserting submission: %w", err)
	}
	return sub, nil
}

const selectColumns = "SELECT id, kind, name, email, subject, body, fields, delivered, created_at FROM submissions"

// GetByID retrieves a single submission.
func (s *Store) GetByID(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	sub, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sub, err
}

// List returns submissions matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Delivered != nil {
		v := 0
		if *filter.Delivered {
			v = 1
		}
		clauses = append(clauses, "delivered = ?")
		args = append(args, v)
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := selectColumns
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var result []Submission
	for rows.Next() {
		sub, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *sub)
	}
	return result, rows.Err()
}

// MarkDelivered sets delivered=1 for the given submission.
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE submissions SET delivered = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking submission delivered: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

// DeliveredChannels returns the channels that already accepted the
// submission.
func (s *Store) DeliveredChannels(ctx context.Context, id string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT channel FROM submission_deliveries WHERE submission_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("listing deliveries: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var ch string
		if err := rows.Scan(&ch); err != nil {
			return nil, fmt.Errorf("scanning delivery: %w", err)
		}
		done[ch] = true
	}
	return done, rows.Err()
}

// MarkChannelDelivered records that one channel accepted the submission.
func (s *Store) MarkChannelDelivered(ctx context.Context, id, channel string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO submission_deliveries (submission_id, channel) VALUES (?, ?)", id, channel)
	if err != nil {
		return fmt.Errorf("recording delivery to %s: %w", channel, err)
	}
	return nil
}

// GetPending returns all undelivered submissions.
func (s *Store) GetPending(ctx context.Context) ([]Submission, error) {
	delivered := false
	return s.List(ctx, ListFilter{Delivered: &delivered})
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Submission, error) {
	var (
		sub        Submission
		kind       string
		fieldsJSON string
		delivered  int
		ts         string
	)

	err := sc.Scan(&sub.ID, &kind, &sub.Name, &sub.Email, &sub.Subject, &sub.Body,
		&fieldsJSON, &delivered, &ts)
	if err != nil {
		return nil, err
	}

	sub.Kind = Kind(kind)
	sub.Delivered = delivered != 0

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		sub.CreatedAt = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		sub.CreatedAt = t
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &sub.Fields); err != nil {
		sub.Fields = nil
	}
	return &sub, nil
}
