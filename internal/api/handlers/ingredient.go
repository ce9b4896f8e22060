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

type IngredientHandler struct {
	ingredientService service.IngredientService
	validator         *validator.Validate
}

func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService, validator: utils.NewValidator()}
}

// CreateIngredient godoc
//	@Summary		Create an ingredient
//	@Description	Stores a new ingredient for the owner. Price per unit is derived from the price.
//	@Tags			Ingredients
//	@Accept			json
//	@Produce		json
//	@Param			user_id	query		string						false	"Owner ID (ignored when a bearer token is sent)"
//	@Param			ingredient	body		models.IngredientRequest	true	"Ingredient"
//	@Success		201		{object}	models.Ingredient			"Created ingredient"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/ingredients [post]
func (h *IngredientHandler) CreateIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.IngredientRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create ingredient input")
			return
		}

		ingredient, err := h.ingredientService.CreateIngredient(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create ingredient", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Ingredient created", slog.String("ingredientId", ingredient.ID))
		response.Success(w, http.StatusCreated, ingredient)
	}
}

// GetIngredient godoc
//	@Summary		Get an ingredient
//	@Tags			Ingredients
//	@Produce		json
//	@Param			id		path		string					true	"Ingredient ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	models.Ingredient		"Ingredient"
//	@Failure		403		{object}	response.ErrorResponse	"Ingredient belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Ingredient not found"
//	@Router			/ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		ingredient, err := h.ingredientService.GetIngredient(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get ingredient", slog.String("ingredientId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, ingredient)
	}
}

// ListIngredients godoc
//	@Summary		List ingredients
//	@Tags			Ingredients
//	@Produce		json
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{array}		models.Ingredient		"Ingredients"
//	@Failure		400		{object}	response.ErrorResponse	"Missing owner"
//	@Router			/ingredients [get]
func (h *IngredientHandler) ListIngredients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		ingredients, err := h.ingredientService.ListIngredients(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list ingredients", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, ingredients)
	}
}

// UpdateIngredient godoc
//	@Summary		Update an ingredient
//	@Description	Replaces the ingredient fields and recomputes the price per unit.
//	@Tags			Ingredients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Ingredient ID"
//	@Param			user_id	query		string						false	"Owner ID"
//	@Param			ingredient	body		models.IngredientRequest	true	"Ingredient"
//	@Success		200		{object}	models.Ingredient			"Updated ingredient"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Ingredient belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Ingredient not found"
//	@Router			/ingredients/{id} [put]
func (h *IngredientHandler) UpdateIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		var req models.IngredientRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update ingredient input")
			return
		}

		ingredient, err := h.ingredientService.UpdateIngredient(r.Context(), userID, id, &req)
		if err != nil {
			logger.Error("Failed to update ingredient", slog.String("ingredientId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Ingredient updated", slog.String("ingredientId", id))
		response.Success(w, http.StatusOK, ingredient)
	}
}

// DeleteIngredient godoc
//	@Summary		Delete an ingredient
//	@Tags			Ingredients
//	@Produce		json
//	@Param			id		path		string					true	"Ingredient ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	response.APIResponse	"Deleted"
//	@Failure		403		{object}	response.ErrorResponse	"Ingredient belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Ingredient not found"
//	@Router			/ingredients/{id} [delete]
func (h *IngredientHandler) DeleteIngredient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		if err := h.ingredientService.DeleteIngredient(r.Context(), userID, id); err != nil {
			logger.Warn("Failed to delete ingredient", slog.String("ingredientId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Ingredient deleted", slog.String("ingredientId", id))
		response.Success(w, http.StatusOK, map[string]string{"message": "Ingredient deleted successfully"})
	}
}

