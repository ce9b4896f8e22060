package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bartracker/bar-price-tracker/internal/errors"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", slog.Any("error", err))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error renders an AppError with its own status. Anything else is reported as a 500
// without leaking the cause.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		writeEnvelope(w, http.StatusInternalServerError, APIResponse{
			Error: &ErrorResponse{Code: errors.ErrCodeInternal, Message: "An unexpected error occurred"},
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	writeEnvelope(w, appErr.StatusCode, APIResponse{Error: body})
}

// fieldMessages maps validator tags to messages; %[1]s is the field, %[2]s the tag parameter.
var fieldMessages = map[string]string{
	"required": "Field %[1]s is required",
	"email":    "Field %[1]s must be a valid email address",
	"min":      "Field %[1]s must be at least %[2]s characters",
	"max":      "Field %[1]s must be at most %[2]s characters",
	"url":      "Field %[1]s must be a valid URL",
	"oneof":    "Field %[1]s must be one of: %[2]s",
	"gte":      "Field %[1]s must be at least %[2]s",
	"lte":      "Field %[1]s must be at most %[2]s",
	"gt":       "Field %[1]s must be greater than %[2]s",
	"lt":       "Field %[1]s must be less than %[2]s",
}

func fieldMessage(fe validator.FieldError) string {
	if format, ok := fieldMessages[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}

	return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
}

// ValidationError writes one message per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {

	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	writeEnvelope(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}
