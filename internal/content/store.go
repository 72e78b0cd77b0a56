package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a document to update does not exist.
var ErrNotFound = errors.New("document not found")

// Document is one stored record.
type Document struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
}

// DocumentStore is the persistence capability behind the Library. Query
// returns documents ordered by creation time, newest first. Failures from
// hosted stores are *apperr.QuotaExceededError or *apperr.TransientError.
type DocumentStore interface {
	Persist(ctx context.Context, collection string, data map[string]any) (string, error)
	Query(ctx context.Context, collection string) ([]Document, error)
	Update(ctx context.Context, collection, id string, data map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

// bookkeeping fields written by the stores themselves
var reservedFields = []string{"id", "createdAt", "updatedAt"}

// encode turns a model into store data.
func encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	for _, k := range reservedFields {
		delete(data, k)
	}
	return data, nil
}

// Fields the admin forms edit. Updates always carry every one of them so a
// cleared input clears the stored value instead of being merged away.
var (
	resourceEditable = []string{
		"name", "nameZhTW", "nameZhCN", "region", "type",
		"description", "descriptionZhTW", "descriptionZhCN",
		"contact", "location",
		"operatingHours", "operatingHoursZhTW", "operatingHoursZhCN",
		"website",
	}
	storyEditable = []string{
		"type", "title", "category", "description", "imageUrl", "date",
		"localVideoUrl", "audioUrl", "location", "authorName",
	}
)

// encodeUpdate is encode with every editable field present, empty ones as "".
func encodeUpdate(v any, editable []string) (map[string]any, error) {
	data, err := encode(v)
	if err != nil {
		return nil, err
	}
	for _, k := range editable {
		if _, ok := data[k]; !ok {
			data[k] = ""
		}
	}
	return data, nil
}

// decode fills v from store data. Unknown fields are ignored.
func decode(d Document, v any) error {
	data := make(map[string]any, len(d.Data))
	for k, val := range d.Data {
		if k == "createdAt" || k == "updatedAt" {
			continue
		}
		data[k] = val
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("decoding document %s: %w", d.ID, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding document %s: %w", d.ID, err)
	}
	return nil
}

func decodeStories(docs []Document) ([]Story, error) {
	out := make([]Story, 0, len(docs))
	for _, d := range docs {
		var s Story
		if err := decode(d, &s); err != nil {
			return nil, err
		}
		s.ID = d.ID
		out = append(out, s)
	}
	return out, nil
}

func decodeResources(docs []Document) ([]Resource, error) {
	out := make([]Resource, 0, len(docs))
	for _, d := range docs {
		var r Resource
		if err := decode(d, &r); err != nil {
			return nil, err
		}
		r.ID = d.ID
		out = append(out, r)
	}
	return out, nil
}
