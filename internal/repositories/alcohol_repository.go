package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

type AlcoholItemRepository interface {
	Create(ctx context.Context, item *models.AlcoholItem) error
	GetByID(ctx context.Context, id string) (*models.AlcoholItem, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.AlcoholItem, error)
	ListWithSourceURL(ctx context.Context, userID string) ([]*models.AlcoholItem, error)
	Update(ctx context.Context, item *models.AlcoholItem) error
	UpdatePrice(ctx context.Context, id string, price, pricePerLiter float64, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type alcoholItemRepository struct {
	store docstore.Store
}

func NewAlcoholItemRepo(store docstore.Store) AlcoholItemRepository {
	return &alcoholItemRepository{store: store}
}

func (r *alcoholItemRepository) Create(ctx context.Context, item *models.AlcoholItem) error {
	id, err := r.store.Add(ctx, CollectionAlcoholItems, newAlcoholDoc(item))
	if err != nil {
		return fmt.Errorf("creating alcohol item: %w", err)
	}

	item.ID = id

	return nil
}

func (r *alcoholItemRepository) GetByID(ctx context.Context, id string) (*models.AlcoholItem, error) {
	var doc alcoholDoc
	if err := r.store.Get(ctx, CollectionAlcoholItems, id, &doc); err != nil {
		return nil, fmt.Errorf("getting alcohol item %s: %w", id, err)
	}

	return doc.toModel(id), nil
}

func (r *alcoholItemRepository) ListByOwner(ctx context.Context, userID string) ([]*models.AlcoholItem, error) {
	return r.list(ctx, docstore.Eq(fieldUserID, userID))
}

// ListWithSourceURL returns the owner's items eligible for a price refresh.
func (r *alcoholItemRepository) ListWithSourceURL(ctx context.Context, userID string) ([]*models.AlcoholItem, error) {
	return r.list(ctx, docstore.Eq(fieldUserID, userID), docstore.Eq(fieldHasProductURL, true))
}

func (r *alcoholItemRepository) list(ctx context.Context, filters ...docstore.Filter) ([]*models.AlcoholItem, error) {
	snaps, err := r.store.Query(ctx, CollectionAlcoholItems, filters...)
	if err != nil {
		return nil, fmt.Errorf("listing alcohol items: %w", err)
	}

	items := make([]*models.AlcoholItem, 0, len(snaps))
	for _, snap := range snaps {
		var doc alcoholDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}

		items = append(items, doc.toModel(snap.ID()))
	}

	return items, nil
}

func (r *alcoholItemRepository) Update(ctx context.Context, item *models.AlcoholItem) error {
	if err := r.store.Set(ctx, CollectionAlcoholItems, item.ID, newAlcoholDoc(item)); err != nil {
		return fmt.Errorf("updating alcohol item %s: %w", item.ID, err)
	}

	return nil
}

// UpdatePrice touches only the price fields so concurrent edits to other fields survive.
func (r *alcoholItemRepository) UpdatePrice(ctx context.Context, id string, price, pricePerLiter float64, at time.Time) error {
	fields := map[string]any{
		fieldPrice:         price,
		fieldPricePerLiter: pricePerLiter,
		fieldLastUpdated:   at,
	}

	if err := r.store.Update(ctx, CollectionAlcoholItems, id, fields); err != nil {
		return fmt.Errorf("updating price of alcohol item %s: %w", id, err)
	}

	return nil
}

func (r *alcoholItemRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionAlcoholItems, id); err != nil {
		return fmt.Errorf("deleting alcohol item %s: %w", id, err)
	}

	return nil
}
