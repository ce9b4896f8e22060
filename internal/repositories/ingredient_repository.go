package repository

import (
	"context"
	"fmt"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id string) (*models.Ingredient, error)
	ListByOwner(ctx context.Context, userID string) ([]*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	Delete(ctx context.Context, id string) error
}

type ingredientRepository struct {
	store docstore.Store
}

func NewIngredientRepo(store docstore.Store) IngredientRepository {
	return &ingredientRepository{store: store}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	id, err := r.store.Add(ctx, CollectionIngredients, newIngredientDoc(ingredient))
	if err != nil {
		return fmt.Errorf("creating ingredient: %w", err)
	}

	ingredient.ID = id

	return nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id string) (*models.Ingredient, error) {
	var doc ingredientDoc
	if err := r.store.Get(ctx, CollectionIngredients, id, &doc); err != nil {
		return nil, fmt.Errorf("getting ingredient %s: %w", id, err)
	}

	return doc.toModel(id), nil
}

func (r *ingredientRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Ingredient, error) {
	snaps, err := r.store.Query(ctx, CollectionIngredients, docstore.Eq(fieldUserID, userID))
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}

	ingredients := make([]*models.Ingredient, 0, len(snaps))
	for _, snap := range snaps {
		var doc ingredientDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}

		ingredients = append(ingredients, doc.toModel(snap.ID()))
	}

	return ingredients, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	if err := r.store.Set(ctx, CollectionIngredients, ingredient.ID, newIngredientDoc(ingredient)); err != nil {
		return fmt.Errorf("updating ingredient %s: %w", ingredient.ID, err)
	}

	return nil
}

func (r *ingredientRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, CollectionIngredients, id); err != nil {
		return fmt.Errorf("deleting ingredient %s: %w", id, err)
	}

	return nil
}
