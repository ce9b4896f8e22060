package utils

import (
	stdErrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/utils/response"
)

// ParseAndValidate decodes the body into dest and runs struct validation.
// On failure the error response has already been written.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()).WithError(err))
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if stdErrors.As(err, &validationErrs) {
			logger.Warn("Validation failed", slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
			return false
		}

		logger.Error("Unexpected validation error", slog.String("error", err.Error()))
		response.Error(w, errors.InternalError("Unable to validate request").WithError(err))
		return false
	}

	return true
}

// OwnerID resolves the caller: token claims when present, otherwise the user_id query parameter.
func OwnerID(r *http.Request) (string, error) {

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.UserID != "" {
		return claims.UserID, nil
	}

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		return "", errors.BadRequestError("user_id is required")
	}

	return userID, nil
}

// PathID returns the {id} path value.
func PathID(r *http.Request) (string, error) {

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", errors.BadRequestError("id is required")
	}

	return id, nil
}
