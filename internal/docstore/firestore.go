package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bartracker/bar-price-tracker/internal/config"
)

type FirestoreStore struct {
	client *firestore.Client
}

// OpenFirestore connects using the credentials file when one is configured, otherwise
// application default credentials.
func OpenFirestore(ctx context.Context, cfg *config.Firestore) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string, dest any) error {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return fmt.Errorf("getting document %s/%s: %w", collection, id, err)
	}

	if err := snap.DataTo(dest); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	return nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}

	snaps := make([]Snapshot, 0, len(docs))
	for _, d := range docs {
		snaps = append(snaps, firestoreSnapshot{d})
	}

	return snaps, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, doc any) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		return fmt.Errorf("writing document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}

	sort.Slice(updates, func(i, j int) bool { return updates[i].Path < updates[j].Path })

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return fmt.Errorf("updating document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return fmt.Errorf("deleting document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("adding document to %s: %w", collection, err)
	}

	return ref.ID, nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore unreachable: %w", err)
	}

	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

type firestoreSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (s firestoreSnapshot) ID() string {
	return s.snap.Ref.ID
}

func (s firestoreSnapshot) DataTo(dest any) error {
	return s.snap.DataTo(dest)
}
