package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

// PriceHistoryRepository is append-only.
type PriceHistoryRepository interface {
	Append(ctx context.Context, entry *models.PriceHistory) error
	ListByItem(ctx context.Context, itemID string) ([]*models.PriceHistory, error)
}

type priceHistoryRepository struct {
	store docstore.Store
}

func NewPriceHistoryRepo(store docstore.Store) PriceHistoryRepository {
	return &priceHistoryRepository{store: store}
}

func (r *priceHistoryRepository) Append(ctx context.Context, entry *models.PriceHistory) error {
	doc := priceHistoryDoc{
		ItemID:   entry.ItemID,
		ItemType: string(entry.ItemType),
		Price:    entry.Price,
		Shop:     entry.Shop,
		Date:     entry.Date,
	}

	id, err := r.store.Add(ctx, CollectionPriceHistory, doc)
	if err != nil {
		return fmt.Errorf("appending price history for %s: %w", entry.ItemID, err)
	}

	entry.ID = id

	return nil
}

// ListByItem returns the item's history oldest first.
func (r *priceHistoryRepository) ListByItem(ctx context.Context, itemID string) ([]*models.PriceHistory, error) {
	snaps, err := r.store.Query(ctx, CollectionPriceHistory, docstore.Eq(fieldItemID, itemID))
	if err != nil {
		return nil, fmt.Errorf("listing price history for %s: %w", itemID, err)
	}

	entries := make([]*models.PriceHistory, 0, len(snaps))
	for _, snap := range snaps {
		var doc priceHistoryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}

		entries = append(entries, &models.PriceHistory{
			ID:       snap.ID(),
			ItemID:   doc.ItemID,
			ItemType: models.ItemType(doc.ItemType),
			Price:    doc.Price,
			Shop:     doc.Shop,
			Date:     doc.Date,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	return entries, nil
}
