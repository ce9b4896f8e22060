package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/pricing"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
)

type AlcoholService interface {
	CreateItem(ctx context.Context, userID string, req *models.AlcoholItemRequest) (*models.AlcoholItem, error)
	GetItem(ctx context.Context, userID, id string) (*models.AlcoholItem, error)
	ListItems(ctx context.Context, userID string) ([]*models.AlcoholItem, error)
	UpdateItem(ctx context.Context, userID, id string, req *models.AlcoholItemRequest) (*models.AlcoholItem, error)
	DeleteItem(ctx context.Context, userID, id string) error
	GetPriceHistory(ctx context.Context, userID, id string) ([]*models.PriceHistory, error)
}

type alcoholService struct {
	repo    repository.AlcoholItemRepository
	history repository.PriceHistoryRepository
	now     func() time.Time
}

func NewAlcoholService(repo repository.AlcoholItemRepository, history repository.PriceHistoryRepository) AlcoholService {
	return &alcoholService{repo: repo, history: history, now: func() time.Time { return time.Now().UTC() }}
}

func (s *alcoholService) CreateItem(ctx context.Context, userID string, req *models.AlcoholItemRequest) (*models.AlcoholItem, error) {

	ppl, err := pricing.PricePerLiter(req.Price, req.Size)
	if err != nil {
		return nil, errors.AddValidationError("size", "must be greater than zero").WithError(err)
	}

	item := &models.AlcoholItem{UserID: userID}
	applyAlcoholRequest(item, req)
	item.PricePerLiter = ppl
	item.LastUpdated = s.now()

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, errors.DatabaseError("Failed to create alcohol item").WithError(err)
	}

	return item, nil
}

func (s *alcoholService) GetItem(ctx context.Context, userID, id string) (*models.AlcoholItem, error) {
	return s.owned(ctx, userID, id)
}

func (s *alcoholService) ListItems(ctx context.Context, userID string) ([]*models.AlcoholItem, error) {

	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch alcohol items").WithError(err)
	}

	return items, nil
}

// UpdateItem replaces the editable fields. A price change is also written to the price history.
func (s *alcoholService) UpdateItem(ctx context.Context, userID, id string, req *models.AlcoholItemRequest) (*models.AlcoholItem, error) {

	item, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	ppl, err := pricing.PricePerLiter(req.Price, req.Size)
	if err != nil {
		return nil, errors.AddValidationError("size", "must be greater than zero").WithError(err)
	}

	oldPrice := item.Price

	applyAlcoholRequest(item, req)
	item.PricePerLiter = ppl
	item.LastUpdated = s.now()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, errors.DatabaseError("Failed to update alcohol item").WithError(err)
	}

	if item.Price != oldPrice {
		s.recordPrice(ctx, item)
	}

	return item, nil
}

func (s *alcoholService) DeleteItem(ctx context.Context, userID, id string) error {

	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Alcohol item not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete alcohol item").WithError(err)
	}

	return nil
}

func (s *alcoholService) GetPriceHistory(ctx context.Context, userID, id string) ([]*models.PriceHistory, error) {

	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}

	entries, err := s.history.ListByItem(ctx, id)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch price history").WithError(err)
	}

	return entries, nil
}

func (s *alcoholService) owned(ctx context.Context, userID, id string) (*models.AlcoholItem, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "Alcohol item")
	}

	if err := checkOwner(item.UserID, userID, "Alcohol item"); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *alcoholService) recordPrice(ctx context.Context, item *models.AlcoholItem) {

	entry := &models.PriceHistory{
		ItemID:   item.ID,
		ItemType: models.ItemTypeAlcohol,
		Price:    item.Price,
		Shop:     item.Shop,
		Date:     item.LastUpdated,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to append price history",
			slog.String("itemId", item.ID), slog.Any("error", err))
	}
}

func applyAlcoholRequest(item *models.AlcoholItem, req *models.AlcoholItemRequest) {
	item.Name = sanitize(req.Name)
	item.Brand = sanitize(req.Brand)
	item.Type = sanitize(req.Type)
	item.Size = req.Size
	item.AlcoholPercentage = req.AlcoholPercentage
	item.Price = req.Price
	item.Shop = sanitize(req.Shop)
	item.ProductURL = req.ProductURL
	item.ImageURL = req.ImageURL
}
