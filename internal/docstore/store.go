// Package docstore persists schemaless documents addressed by (collection, id).
// Drivers guarantee per-document atomicity only; there are no transactions.
package docstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Filter is an equality match on a top-level document field.
type Filter struct {
	Field string
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value}
}

type Snapshot interface {
	ID() string
	DataTo(dest any) error
}

type Store interface {
	Get(ctx context.Context, collection, id string, dest any) error
	Query(ctx context.Context, collection string, filters ...Filter) ([]Snapshot, error)
	Set(ctx context.Context, collection, id string, doc any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Add(ctx context.Context, collection string, doc any) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Store = (*FirestoreStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
