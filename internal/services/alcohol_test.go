package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/docstore"
	appErrors "github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
	"github.com/bartracker/bar-price-tracker/internal/repositories/mocks"
	service "github.com/bartracker/bar-price-tracker/internal/services"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func ginRequest(price float64, size int) *models.AlcoholItemRequest {
	return &models.AlcoholItemRequest{
		Name:              "Tanqueray London Dry Gin",
		Brand:             "Tanqueray",
		Type:              "gin",
		Size:              size,
		AlcoholPercentage: 43.1,
		Price:             price,
		Shop:              "BWS",
	}
}

func TestAlcoholService_Lifecycle(t *testing.T) {

	// Arrange
	ctx := t.Context()
	store := docstore.NewMemoryStore()
	history := repository.NewPriceHistoryRepo(store)
	svc := service.NewAlcoholService(repository.NewAlcoholItemRepo(store), history)

	item, err := svc.CreateItem(ctx, "owner", ginRequest(30, 700))
	require.NoError(t, err)

	t.Run("Success - Create computes price per liter", func(t *testing.T) {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "owner", item.UserID)
		assert.InDelta(t, 42.857142857, item.PricePerLiter, 1e-6)
		assert.False(t, item.LastUpdated.IsZero())
	})

	t.Run("Success - Update recomputes and records history", func(t *testing.T) {
		// Act
		updated, err := svc.UpdateItem(ctx, "owner", item.ID, ginRequest(45, 700))

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 64.285714, updated.PricePerLiter, 1e-5)

		entries, err := svc.GetPriceHistory(ctx, "owner", item.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.InDelta(t, 45, entries[0].Price, 1e-9)
		assert.Equal(t, models.ItemTypeAlcohol, entries[0].ItemType)
	})

	t.Run("Success - Unchanged price writes no history", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, "owner", item.ID, ginRequest(45, 1000))
		require.NoError(t, err)

		entries, err := svc.GetPriceHistory(ctx, "owner", item.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Failure - Get by non-owner", func(t *testing.T) {
		_, err := svc.GetItem(ctx, "intruder", item.ID)

		assertAppError(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Delete by non-owner", func(t *testing.T) {
		err := svc.DeleteItem(ctx, "intruder", item.ID)

		assertAppError(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Success - Delete then NotFound", func(t *testing.T) {
		require.NoError(t, svc.DeleteItem(ctx, "owner", item.ID))

		err := svc.DeleteItem(ctx, "owner", item.ID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestAlcoholService_CreateItem(t *testing.T) {

	t.Run("Failure - Zero size", func(t *testing.T) {
		// Arrange
		repo := mocks.NewAlcoholItemRepository(t)
		svc := service.NewAlcoholService(repo, mocks.NewPriceHistoryRepository(t))

		// Act
		item, err := svc.CreateItem(t.Context(), "owner", ginRequest(30, 0))

		// Assert
		assert.Nil(t, item)
		assertAppError(t, err, appErrors.ErrCodeValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Success - Markup stripped from text fields", func(t *testing.T) {
		// Arrange
		repo := mocks.NewAlcoholItemRepository(t)
		svc := service.NewAlcoholService(repo, mocks.NewPriceHistoryRepository(t))
		req := ginRequest(30, 700)
		req.Name = "<b>Gin</b> & Tonic<script>alert(1)</script>"

		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.AlcoholItem")).Return(nil).Once()

		// Act
		item, err := svc.CreateItem(t.Context(), "owner", req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Gin & Tonic", item.Name)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		// Arrange
		repo := mocks.NewAlcoholItemRepository(t)
		svc := service.NewAlcoholService(repo, mocks.NewPriceHistoryRepository(t))

		repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		// Act
		_, err := svc.CreateItem(t.Context(), "owner", ginRequest(30, 700))

		// Assert
		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestAlcoholService_UpdateItem(t *testing.T) {

	t.Run("Success - History failure does not fail the update", func(t *testing.T) {
		// Arrange
		repo := mocks.NewAlcoholItemRepository(t)
		history := mocks.NewPriceHistoryRepository(t)
		svc := service.NewAlcoholService(repo, history)

		stored := &models.AlcoholItem{ID: "a1", UserID: "owner", Price: 30, Size: 700}
		repo.On("GetByID", mock.Anything, "a1").Return(stored, nil).Once()
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.AlcoholItem")).Return(nil).Once()
		history.On("Append", mock.Anything, mock.AnythingOfType("*models.PriceHistory")).Return(errors.New("timeout")).Once()

		// Act
		item, err := svc.UpdateItem(t.Context(), "owner", "a1", ginRequest(35, 700))

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 50, item.PricePerLiter, 1e-9)
	})

	t.Run("Failure - Missing item", func(t *testing.T) {
		// Arrange
		repo := mocks.NewAlcoholItemRepository(t)
		svc := service.NewAlcoholService(repo, mocks.NewPriceHistoryRepository(t))

		repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		// Act
		_, err := svc.UpdateItem(t.Context(), "owner", "missing", ginRequest(35, 700))

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
