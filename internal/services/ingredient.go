package service

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/pricing"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
)

type IngredientService interface {
	CreateIngredient(ctx context.Context, userID string, req *models.IngredientRequest) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, userID, id string) (*models.Ingredient, error)
	ListIngredients(ctx context.Context, userID string) ([]*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, userID, id string, req *models.IngredientRequest) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID, id string) error
}

type ingredientService struct {
	repo repository.IngredientRepository
	now  func() time.Time
}

func NewIngredientService(repo repository.IngredientRepository) IngredientService {
	return &ingredientService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, userID string, req *models.IngredientRequest) (*models.Ingredient, error) {

	ingredient := &models.Ingredient{UserID: userID}
	s.apply(ingredient, req)

	if err := s.repo.Create(ctx, ingredient); err != nil {
		return nil, errors.DatabaseError("Failed to create ingredient").WithError(err)
	}

	return ingredient, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, userID, id string) (*models.Ingredient, error) {
	return s.owned(ctx, userID, id)
}

func (s *ingredientService) ListIngredients(ctx context.Context, userID string) ([]*models.Ingredient, error) {

	ingredients, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch ingredients").WithError(err)
	}

	return ingredients, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, userID, id string, req *models.IngredientRequest) (*models.Ingredient, error) {

	ingredient, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.apply(ingredient, req)

	if err := s.repo.Update(ctx, ingredient); err != nil {
		return nil, errors.DatabaseError("Failed to update ingredient").WithError(err)
	}

	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, userID, id string) error {

	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Ingredient not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete ingredient").WithError(err)
	}

	return nil
}

func (s *ingredientService) owned(ctx context.Context, userID, id string) (*models.Ingredient, error) {

	ingredient, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "Ingredient")
	}

	if err := checkOwner(ingredient.UserID, userID, "Ingredient"); err != nil {
		return nil, err
	}

	return ingredient, nil
}

func (s *ingredientService) apply(ingredient *models.Ingredient, req *models.IngredientRequest) {
	ingredient.Name = sanitize(req.Name)
	ingredient.Type = req.Type
	ingredient.Category = sanitize(req.Category)
	ingredient.Price = req.Price
	ingredient.Unit = sanitize(req.Unit)
	ingredient.PricePerUnit = pricing.PricePerUnit(req.Price, req.Unit)
	ingredient.Shop = sanitize(req.Shop)
	ingredient.LastUpdated = s.now()
}
