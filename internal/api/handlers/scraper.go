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

type ScraperHandler struct {
	scraperService service.ScraperService
	validator      *validator.Validate
}

func NewScraperHandler(scraperService service.ScraperService) *ScraperHandler {
	return &ScraperHandler{scraperService: scraperService, validator: utils.NewValidator()}
}

// ScrapeProduct godoc
//	@Summary		Scrape a product page
//	@Description	Extracts name, brand, price, volume, strength and image from a supported retailer page.
//	@Description	Fields that could not be found are null.
//	@Tags			Scraper
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ScrapeRequest	true	"Product URL"
//	@Success		200		{object}	models.ScrapedProduct	"Extracted product"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid URL or unsupported retailer"
//	@Failure		502		{object}	response.ErrorResponse	"Retailer page could not be fetched"
//	@Router			/scraper/scrape [post]
func (h *ScraperHandler) ScrapeProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ScrapeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid scrape input")
			return
		}

		product, err := h.scraperService.ScrapeProduct(r.Context(), req.ProductURL)
		if err != nil {
			logger.Warn("Scrape failed", slog.String("url", req.ProductURL), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdatePrices godoc
//	@Summary		Refresh prices of an owner's items
//	@Description	Re-scrapes every item with a product URL. Failed items are listed in errors and do not stop the batch.
//	@Tags			Scraper
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.RefreshPricesRequest	true	"Owner"
//	@Success		200		{object}	models.RefreshSummary		"Refresh summary"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/scraper/update-prices [post]
func (h *ScraperHandler) UpdatePrices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RefreshPricesRequest
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			req.UserID = claims.UserID
		}

		if req.UserID == "" && !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update prices input")
			return
		}

		summary, err := h.scraperService.RefreshPrices(r.Context(), req.UserID)
		if err != nil {
			logger.Error("Price refresh failed", slog.String("userId", req.UserID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
