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

type CocktailService interface {
	CreateCocktail(ctx context.Context, userID string, req *models.CocktailRequest) (*models.Cocktail, error)
	GetCocktail(ctx context.Context, userID, id string) (*models.Cocktail, error)
	ListCocktails(ctx context.Context, userID string) ([]*models.Cocktail, error)
	UpdateCocktail(ctx context.Context, userID, id string, req *models.CocktailRequest) (*models.Cocktail, error)
	DeleteCocktail(ctx context.Context, userID, id string) error
}

type cocktailService struct {
	repo repository.CocktailRepository
	now  func() time.Time
}

func NewCocktailService(repo repository.CocktailRepository) CocktailService {
	return &cocktailService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *cocktailService) CreateCocktail(ctx context.Context, userID string, req *models.CocktailRequest) (*models.Cocktail, error) {

	cocktail := &models.Cocktail{UserID: userID}
	if err := applyCocktailRequest(cocktail, req); err != nil {
		return nil, err
	}

	now := s.now()
	cocktail.CreatedAt = now
	cocktail.UpdatedAt = now

	if err := s.repo.Create(ctx, cocktail); err != nil {
		return nil, errors.DatabaseError("Failed to create cocktail").WithError(err)
	}

	return cocktail, nil
}

func (s *cocktailService) GetCocktail(ctx context.Context, userID, id string) (*models.Cocktail, error) {
	return s.owned(ctx, userID, id)
}

func (s *cocktailService) ListCocktails(ctx context.Context, userID string) ([]*models.Cocktail, error) {

	cocktails, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cocktails").WithError(err)
	}

	return cocktails, nil
}

// UpdateCocktail recomputes every cost field and keeps CreatedAt.
func (s *cocktailService) UpdateCocktail(ctx context.Context, userID, id string, req *models.CocktailRequest) (*models.Cocktail, error) {

	cocktail, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := applyCocktailRequest(cocktail, req); err != nil {
		return nil, err
	}

	cocktail.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cocktail); err != nil {
		return nil, errors.DatabaseError("Failed to update cocktail").WithError(err)
	}

	return cocktail, nil
}

func (s *cocktailService) DeleteCocktail(ctx context.Context, userID, id string) error {

	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Cocktail not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete cocktail").WithError(err)
	}

	return nil
}

func (s *cocktailService) owned(ctx context.Context, userID, id string) (*models.Cocktail, error) {

	cocktail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "Cocktail")
	}

	if err := checkOwner(cocktail.UserID, userID, "Cocktail"); err != nil {
		return nil, err
	}

	return cocktail, nil
}

func applyCocktailRequest(cocktail *models.Cocktail, req *models.CocktailRequest) error {

	servings := 1
	if req.Servings != nil {
		servings = *req.Servings
	}

	if err := pricing.ValidateServings(servings); err != nil {
		return errors.AddValidationError("servings", "must be at least 1").WithError(err)
	}

	ingredients := make([]models.CocktailIngredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ing.IngredientName = sanitize(ing.IngredientName)
		ing.Unit = sanitize(ing.Unit)
		ingredients = append(ingredients, ing)
	}

	costs := pricing.CocktailCosts(ingredients, req.ProfitMargin, servings)

	cocktail.Name = sanitize(req.Name)
	cocktail.Description = sanitizePtr(req.Description)
	cocktail.Ingredients = ingredients
	cocktail.Instructions = sanitizeAll(req.Instructions)
	cocktail.ProfitMargin = req.ProfitMargin
	cocktail.Servings = servings
	cocktail.Category = sanitize(req.Category)
	cocktail.Tags = sanitizeAll(req.Tags)
	cocktail.ImageURL = req.ImageURL
	cocktail.TotalCost = costs.TotalCost
	cocktail.CostPerServing = costs.CostPerServing
	cocktail.SellingPrice = costs.SellingPrice

	return nil
}
