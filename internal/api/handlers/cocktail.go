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

type CocktailHandler struct {
	cocktailService service.CocktailService
	validator       *validator.Validate
}

func NewCocktailHandler(cocktailService service.CocktailService) *CocktailHandler {
	return &CocktailHandler{cocktailService: cocktailService, validator: utils.NewValidator()}
}

// CreateCocktail godoc
//	@Summary		Create a cocktail
//	@Description	Stores a recipe. Total cost, cost per serving and selling price are computed from the ingredients.
//	@Tags			Cocktails
//	@Accept			json
//	@Produce		json
//	@Param			user_id	query		string						false	"Owner ID (ignored when a bearer token is sent)"
//	@Param			cocktail	body		models.CocktailRequest	true	"Cocktail"
//	@Success		201		{object}	models.Cocktail			"Created cocktail"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/cocktails [post]
func (h *CocktailHandler) CreateCocktail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CocktailRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create cocktail input")
			return
		}

		cocktail, err := h.cocktailService.CreateCocktail(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to create cocktail", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cocktail created", slog.String("cocktailId", cocktail.ID))
		response.Success(w, http.StatusCreated, cocktail)
	}
}

// GetCocktail godoc
//	@Summary		Get a cocktail
//	@Tags			Cocktails
//	@Produce		json
//	@Param			id		path		string					true	"Cocktail ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	models.Cocktail		"Cocktail"
//	@Failure		403		{object}	response.ErrorResponse	"Cocktail belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Cocktail not found"
//	@Router			/cocktails/{id} [get]
func (h *CocktailHandler) GetCocktail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		cocktail, err := h.cocktailService.GetCocktail(r.Context(), userID, id)
		if err != nil {
			logger.Warn("Failed to get cocktail", slog.String("cocktailId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cocktail)
	}
}

// ListCocktails godoc
//	@Summary		List cocktails
//	@Tags			Cocktails
//	@Produce		json
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{array}		models.Cocktail		"Cocktails"
//	@Failure		400		{object}	response.ErrorResponse	"Missing owner"
//	@Router			/cocktails [get]
func (h *CocktailHandler) ListCocktails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, err := utils.OwnerID(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		cocktails, err := h.cocktailService.ListCocktails(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list cocktails", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cocktails)
	}
}

// UpdateCocktail godoc
//	@Summary		Update a cocktail
//	@Description	Replaces the recipe and recomputes all cost fields. Creation time is kept.
//	@Tags			Cocktails
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Cocktail ID"
//	@Param			user_id	query		string						false	"Owner ID"
//	@Param			cocktail	body		models.CocktailRequest	true	"Cocktail"
//	@Success		200		{object}	models.Cocktail			"Updated cocktail"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Cocktail belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse		"Cocktail not found"
//	@Router			/cocktails/{id} [put]
func (h *CocktailHandler) UpdateCocktail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		var req models.CocktailRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update cocktail input")
			return
		}

		cocktail, err := h.cocktailService.UpdateCocktail(r.Context(), userID, id, &req)
		if err != nil {
			logger.Error("Failed to update cocktail", slog.String("cocktailId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cocktail updated", slog.String("cocktailId", id))
		response.Success(w, http.StatusOK, cocktail)
	}
}

// DeleteCocktail godoc
//	@Summary		Delete a cocktail
//	@Tags			Cocktails
//	@Produce		json
//	@Param			id		path		string					true	"Cocktail ID"
//	@Param			user_id	query		string					false	"Owner ID"
//	@Success		200		{object}	response.APIResponse	"Deleted"
//	@Failure		403		{object}	response.ErrorResponse	"Cocktail belongs to another user"
//	@Failure		404		{object}	response.ErrorResponse	"Cocktail not found"
//	@Router			/cocktails/{id} [delete]
func (h *CocktailHandler) DeleteCocktail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, id, ok := ownerAndID(w, r)
		if !ok {
			return
		}

		if err := h.cocktailService.DeleteCocktail(r.Context(), userID, id); err != nil {
			logger.Warn("Failed to delete cocktail", slog.String("cocktailId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cocktail deleted", slog.String("cocktailId", id))
		response.Success(w, http.StatusOK, map[string]string{"message": "Cocktail deleted successfully"})
	}
}

