package docstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
)

type flaggedDoc struct {
	UserID        string  `json:"userId"`
	Price         float64 `json:"price"`
	HasProductURL bool    `json:"hasProductUrl"`
}

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - add get update", func(t *testing.T) {
		// Arrange
		s := docstore.NewMemoryStore()

		// Act
		id, err := s.Add(ctx, "alcohol_items", flaggedDoc{UserID: "u1", Price: 30})
		require.NoError(t, err)

		require.NoError(t, s.Update(ctx, "alcohol_items", id, map[string]any{"price": 45.5}))

		var got flaggedDoc
		require.NoError(t, s.Get(ctx, "alcohol_items", id, &got))

		// Assert
		assert.Equal(t, flaggedDoc{UserID: "u1", Price: 45.5}, got)
	})

	t.Run("Success - query by equality keeps insertion order", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "alcohol_items", "b", flaggedDoc{UserID: "u1", HasProductURL: true}))
		require.NoError(t, s.Set(ctx, "alcohol_items", "a", flaggedDoc{UserID: "u1", HasProductURL: true}))
		require.NoError(t, s.Set(ctx, "alcohol_items", "c", flaggedDoc{UserID: "u1"}))
		require.NoError(t, s.Set(ctx, "alcohol_items", "d", flaggedDoc{UserID: "u2", HasProductURL: true}))

		snaps, err := s.Query(ctx, "alcohol_items",
			docstore.Eq("userId", "u1"), docstore.Eq("hasProductUrl", true))

		require.NoError(t, err)
		require.Len(t, snaps, 2)
		assert.Equal(t, "b", snaps[0].ID())
		assert.Equal(t, "a", snaps[1].ID())
	})

	t.Run("Success - numeric filters compare by value", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "x", "1", flaggedDoc{Price: 3}))

		snaps, err := s.Query(ctx, "x", docstore.Eq("price", 3))

		require.NoError(t, err)
		assert.Len(t, snaps, 1)
	})

	t.Run("Failure - missing documents", func(t *testing.T) {
		s := docstore.NewMemoryStore()

		var got flaggedDoc
		assert.ErrorIs(t, s.Get(ctx, "x", "nope", &got), docstore.ErrNotFound)
		assert.ErrorIs(t, s.Update(ctx, "x", "nope", map[string]any{"a": 1}), docstore.ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "x", "nope"), docstore.ErrNotFound)
	})

	t.Run("Success - delete then get is not found", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, "x", "1", flaggedDoc{}))

		require.NoError(t, s.Delete(ctx, "x", "1"))

		var got flaggedDoc
		assert.ErrorIs(t, s.Get(ctx, "x", "1", &got), docstore.ErrNotFound)
	})
}
