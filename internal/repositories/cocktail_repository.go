package repository

import (
	"context"
	"fmt"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

type CocktailRepository interface {
	Create(ctx context.Context, cocktail *models.Cocktail) error
	GetByID(ctx context.Context, id string) (*models.Cocktail, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Cocktail, error)
	Update(ctx context.Context, cocktail *models.Cocktail) error
	Delete(ctx context.Context, id string) error
}

type cocktailRepository struct {
	store docstore.Store
}

func NewCocktailRepo(store docstore.Store) CocktailRepository {
	return &cocktailRepository{store: store}
}

func (r *cocktailRepository) Create(ctx context.Context, cocktail *models.Cocktail) error {
	id, err := r.store.Add(ctx, CollectionCocktails, newCocktailDoc(cocktail))
	if err != nil {
		return fmt.Errorf("creating cocktail: %w", err)
	}

	cocktail.ID = id

	return nil
}

func (r *cocktailRepository) GetByID(ctx context.Context, id string) (*models.Cocktail, error) {
	var doc cocktailDoc
	if err := r.store.Get(ctx, CollectionCocktails, id, &doc); err != nil {
		return nil, fmt.Errorf("getting cocktail %s: %w", id, err)
	}

	return doc.toModel(id), nil
}

func (r *cocktailRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Cocktail, error) {
	snaps, err := r.store.Query(ctx, CollectionCocktails, docstore.Eq(fieldUserID, userID))
	if err != nil {
		return nil, fmt.Errorf("listing cocktails: %w", err)
	}

	cocktails := make([]*models.Cocktail, 0, len(snaps))
	for _, snap := range snaps {
		var doc cocktailDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}

		cocktails = append(cocktails, doc.toModel(snap.ID()))
	}

	return cocktails, nil
}

func (r *cocktailRepository) Update(ctx context.Context, cocktail *models.Cocktail) error {
	if err := r.store.Set(ctx, CollectionCocktails, cocktail.ID, newCocktailDoc(cocktail)); err != nil {
		return fmt.Errorf("updating cocktail %s: %w", cocktail.ID, err)
	}

	return nil
}

func (r *cocktailRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionCocktails, id); err != nil {
		return fmt.Errorf("deleting cocktail %s: %w", id, err)
	}

	return nil
}
