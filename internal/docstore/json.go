package docstore

import (
	"encoding/json"
	"fmt"
)

type jsonSnapshot struct {
	id   string
	data []byte
}

func (s *jsonSnapshot) ID() string {
	return s.id
}

func (s *jsonSnapshot) DataTo(dest any) error {
	if err := json.Unmarshal(s.data, dest); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", s.id, err)
	}

	return nil
}

func filtersToDocument(filters []Filter) ([]byte, error) {
	doc := make(map[string]any, len(filters))
	for _, f := range filters {
		doc[f.Field] = f.Value
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filters: %w", err)
	}

	return data, nil
}
