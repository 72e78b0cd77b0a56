package content

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// FirestoreStore keeps documents in Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a connected client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Persist(ctx context.Context, collection string, data map[string]any) (string, error) {
	doc := make(map[string]any, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc["createdAt"] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return "", classify("add "+collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	snaps, err := iter.GetAll()
	if err != nil {
		return nil, classify("query "+collection, err)
	}
	docs := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		data := snap.Data()
		created := snap.CreateTime
		if ts, ok := data["createdAt"].(time.Time); ok {
			created = ts
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: data, CreatedAt: created})
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].CreatedAt.After(docs[j].CreatedAt) })
	return docs, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, data map[string]any) error {
	updates := make([]firestore.Update, 0, len(data)+1)
	for k, v := range data {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
		}
		return classify("update "+collection, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return classify("delete "+collection, err)
	}
	return nil
}

// classify maps a Firestore RPC failure onto the apperr types.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if status.Code(err) == codes.ResourceExhausted {
		return apperr.Quota("firestore", err)
	}
	return apperr.Transient("firestore "+op, err)
}
