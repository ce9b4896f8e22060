package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryEntry struct {
	seq  int64
	data []byte
}

// MemoryStore keeps JSON-encoded documents in process. Used for local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	seq         int64
	collections map[string]map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string, dest any) error {
	s.mu.RLock()
	entry, ok := s.collections[collection][id]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}

	return (&jsonSnapshot{id: id, data: entry.data}).DataTo(dest)
}

func (s *MemoryStore) Query(_ context.Context, collection string, filters ...Filter) ([]Snapshot, error) {
	want := make(map[string]any, len(filters))
	for _, f := range filters {
		v, err := normalize(f.Value)
		if err != nil {
			return nil, err
		}

		want[f.Field] = v
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		seq  int64
		snap *jsonSnapshot
	}

	var hits []hit

	for id, entry := range s.collections[collection] {
		var fields map[string]any
		if err := json.Unmarshal(entry.data, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
		}

		if matches(fields, want) {
			hits = append(hits, hit{seq: entry.seq, snap: &jsonSnapshot{id: id, data: entry.data}})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].seq < hits[j].seq })

	snaps := make([]Snapshot, 0, len(hits))
	for _, h := range hits {
		snaps = append(snaps, h.snap)
	}

	return snaps, nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[collection]
	if !ok {
		col = make(map[string]memoryEntry)
		s.collections[collection] = col
	}

	entry, exists := col[id]
	if !exists {
		s.seq++
		entry.seq = s.seq
	}

	entry.data = data
	col[id] = entry

	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(entry.data, &doc); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", id, err)
	}

	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode field %s: %w", k, err)
		}

		doc[k] = raw
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	entry.data = data
	s.collections[collection][id] = entry

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}

	delete(s.collections[collection], id)

	return nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	id := uuid.NewString()

	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}

	return id, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// normalize gives a filter value the shape it has after a JSON round trip, so 3 and 3.0 compare equal.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter value: %w", err)
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode filter value: %w", err)
	}

	return out, nil
}

func matches(fields, want map[string]any) bool {
	for k, v := range want {
		got, ok := fields[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}

	return true
}
