package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/models"
	service "github.com/bartracker/bar-price-tracker/internal/services"
	"github.com/bartracker/bar-price-tracker/internal/utils"
	"github.com/bartracker/bar-price-tracker/internal/utils/response"
)

type AlcoholHandler struct {
	alcoholService service.AlcoholService
	validator      *validator.Validate
}

func NewAlcoholHandler(alcoholService service.AlcoholService) *AlcoholHandler {
	return &AlcoholHandler{alcoholService: alcoholService, validator: utils.NewValidator()}
}

// CreateItem godoc
//	@Summary		Create an alcohol item
//	@Description	Stores a new bottle for the owner. Price per liter is computed from price and size.
//	@Tags			Alcohol
//	@Accept			json
//	@Produce		json
//	@Param			user_id	query		string						false	"Owner ID (ignored when a bearer token is sent)"
//	@Param			item	body		models.AlcoholItemRequest	true	"Alcohol item"
//	@Success		201		{object}	models.AlcoholItem			"Created item"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/alcohol [post]
func (h *AlcoholHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.AlcoholItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create alcohol item input")
			return
		}

		item, err := h.alcoholService.CreateItem(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create alcohol item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Alcohol item created", slog.String("itemId", item.ID))
		response.Success(w, http.StatusCreated, item)
	}
}

// GetItem godoc
//	@Summary		Get an alcohol item
//	@Tags			Alcohol
//	@Produce		json
//	@Param			id		path		string					true	"Item ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	models.AlcoholItem		"Item"
//	@Failure		403		{object}	response.ErrorResponse	"Item belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/alcohol/{id} [get]
func (h *AlcoholHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		item, err := h.alcoholService.GetItem(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get alcohol item", slog.String("itemId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, item)
	}
}

// ListItems godoc
//	@Summary		List alcohol items
//	@Tags			Alcohol
//	@Produce		json
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{array}		models.AlcoholItem		"Items"
//	@Failure		400		{object}	response.ErrorResponse	"Missing owner"
//	@Router			/alcohol [get]
func (h *AlcoholHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		items, err := h.alcoholService.ListItems(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list alcohol items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// UpdateItem godoc
//	@Summary		Update an alcohol item
//	@Description	Replaces the item fields. A changed price is written to the price history.
//	@Tags			Alcohol
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Item ID"
//	@Param			user_id	query		string						false	"Owner ID"
//	@Param			item	body		models.AlcoholItemRequest	true	"Alcohol item"
//	@Success		200		{object}	models.AlcoholItem			"Updated item"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Item belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Item not found"
//	@Router			/alcohol/{id} [put]
func (h *AlcoholHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		var req models.AlcoholItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update alcohol item input")
			return
		}

		item, err := h.alcoholService.UpdateItem(r.Context(), userID, id, &req)
		if err != nil {
			logger.Error("Failed to update alcohol item", slog.String("itemId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Alcohol item updated", slog.String("itemId", id))
		response.Success(w, http.StatusOK, item)
	}
}

// DeleteItem godoc
//	@Summary		Delete an alcohol item
//	@Tags			Alcohol
//	@Produce		json
//	@Param			id		path		string					true	"Item ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	response.APIResponse	"Deleted"
//	@Failure		403		{object}	response.ErrorResponse	"Item belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/alcohol/{id} [delete]
func (h *AlcoholHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		if err := h.alcoholService.DeleteItem(r.Context(), userID, id); err != nil {
			logger.Warn("Failed to delete alcohol item", slog.String("itemId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Alcohol item deleted", slog.String("itemId", id))
		response.Success(w, http.StatusOK, map[string]string{"message": "Alcohol item deleted successfully"})
	}
}

// GetPriceHistory godoc
//	@Summary		Price history of an alcohol item
//	@Tags			Alcohol
//	@Produce		json
//	@Param			id		path		string					true	"Item ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{array}		models.PriceHistory		"History, oldest first"
//	@Failure		404		{object}	response.ErrorResponse	"Item not found"
//	@Router			/alcohol/{id}/history [get]
func (h *AlcoholHandler) GetPriceHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		entries, err := h.alcoholService.GetPriceHistory(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get price history", slog.String("itemId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, entries)
	}
}

// ownerAndID writes the error response itself when either value is missing.
func ownerAndID(w http.ResponseWriter, r *http.Request) (string, string, bool) {

	userID, err := utils.OwnerID(r)
	if err != nil {
		response.Error(w, err)
		return "", "", false
	}

	id, err := utils.PathID(r)
	if err != nil {
		response.Error(w, err)
		return "", "", false
	}

	return userID, id, true
}
