package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bartracker/bar-price-tracker/internal/api/handlers"
	appErrors "github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/services/mocks"
	"github.com/bartracker/bar-price-tracker/internal/testutils"
)

func alcoholBody(t *testing.T) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(models.AlcoholItemRequest{
		Name:  "Bombay Sapphire",
		Type:  "gin",
		Size:  700,
		Price: 30,
		Shop:  "BWS",
	})
	assert.NoError(t, err)

	return bytes.NewReader(body)
}

func TestAlcoholHandler_CreateItem(t *testing.T) {

	t.Run("Success - Item Created", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)
		expected := &models.AlcoholItem{ID: "a1", UserID: "u1", Name: "Bombay Sapphire", Size: 700, Price: 30, PricePerLiter: 42.857142857142854}

		svc.On("CreateItem", mock.Anything, "u1", mock.AnythingOfType("*models.AlcoholItemRequest")).Return(expected, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/alcohol?user_id=u1", alcoholBody(t), nil)
		rr := httptest.NewRecorder()

		// Act
		h.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.AlcoholItem
		resp := testutils.DecodeResponse(t, rr, &got)
		assert.True(t, resp.Success)
		assert.Equal(t, "a1", got.ID)
		assert.InDelta(t, 42.857142857, got.PricePerLiter, 1e-6)
	})

	t.Run("Success - Owner taken from token", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)

		svc.On("CreateItem", mock.Anything, "token-user", mock.Anything).Return(&models.AlcoholItem{ID: "a2"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/alcohol?user_id=other", alcoholBody(t), "token-user", nil)
		rr := httptest.NewRecorder()

		// Act
		h.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Missing owner", func(t *testing.T) {
		// Arrange
		h := handlers.NewAlcoholHandler(mocks.NewAlcoholService(t))
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/alcohol", alcoholBody(t), nil)
		rr := httptest.NewRecorder()

		// Act
		h.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, testutils.DecodeResponse(t, rr, nil).Error.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// Arrange
		h := handlers.NewAlcoholHandler(mocks.NewAlcoholService(t))
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/alcohol?user_id=u1",
			strings.NewReader(`{"name":"Gin","type":"gin","size":0,"price":30}`), nil)
		rr := httptest.NewRecorder()

		// Act
		h.CreateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		resp := testutils.DecodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field size is required")
	})
}

func TestAlcoholHandler_GetItem(t *testing.T) {

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Success - Item Found", nil, http.StatusOK},
		{"Failure - Forbidden", appErrors.ForbiddenError("You don't have permission to access this alcohol item"), http.StatusForbidden},
		{"Failure - Not Found", appErrors.NotFoundError("Alcohol item not found"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc := mocks.NewAlcoholService(t)
			h := handlers.NewAlcoholHandler(svc)

			var item *models.AlcoholItem
			if tt.err == nil {
				item = &models.AlcoholItem{ID: "a1", UserID: "u1"}
			}
			svc.On("GetItem", mock.Anything, "u1", "a1").Return(item, tt.err).Once()

			req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/alcohol/a1?user_id=u1", nil, map[string]string{"id": "a1"})
			rr := httptest.NewRecorder()

			// Act
			h.GetItem().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestAlcoholHandler_UpdateAndDelete(t *testing.T) {

	t.Run("Success - Item Updated", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)

		svc.On("UpdateItem", mock.Anything, "u1", "a1", mock.AnythingOfType("*models.AlcoholItemRequest")).
			Return(&models.AlcoholItem{ID: "a1", Price: 30}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/v1/alcohol/a1?user_id=u1", alcoholBody(t), map[string]string{"id": "a1"})
		rr := httptest.NewRecorder()

		// Act
		h.UpdateItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Item Deleted", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)

		svc.On("DeleteItem", mock.Anything, "u1", "a1").Return(nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/alcohol/a1?user_id=u1", nil, map[string]string{"id": "a1"})
		rr := httptest.NewRecorder()

		// Act
		h.DeleteItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, testutils.DecodeResponse(t, rr, nil).Success)
	})

	t.Run("Failure - Delete by non-owner", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)

		svc.On("DeleteItem", mock.Anything, "intruder", "a1").Return(appErrors.ForbiddenError("nope")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/alcohol/a1?user_id=intruder", nil, map[string]string{"id": "a1"})
		rr := httptest.NewRecorder()

		// Act
		h.DeleteItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, appErrors.ErrCodeForbidden, testutils.DecodeResponse(t, rr, nil).Error.Code)
	})

	t.Run("Success - Price History", func(t *testing.T) {
		// Arrange
		svc := mocks.NewAlcoholService(t)
		h := handlers.NewAlcoholHandler(svc)

		svc.On("GetPriceHistory", mock.Anything, "u1", "a1").
			Return([]*models.PriceHistory{{ItemID: "a1", Price: 30}, {ItemID: "a1", Price: 45}}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/alcohol/a1/history?user_id=u1", nil, map[string]string{"id": "a1"})
		rr := httptest.NewRecorder()

		// Act
		h.GetPriceHistory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var entries []models.PriceHistory
		testutils.DecodeResponse(t, rr, &entries)
		assert.Len(t, entries, 2)
	})
}
