package response_test

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/utils/response"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var env response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	return env
}

func TestError(t *testing.T) {

	t.Run("Success - AppError keeps its status and detail", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		err := errors.FetchFailureError("Failed to fetch product page").WithDetail("status 503")

		// Act
		response.Error(rr, err)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		env := decode(t, rr)
		assert.False(t, env.Success)
		assert.Equal(t, errors.ErrCodeFetchFailure, env.Error.Code)
		assert.Equal(t, []string{"status 503"}, env.Error.Details)
	})

	t.Run("Success - Plain error hidden behind 500", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, stdErrors.New("pq: connection refused"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		env := decode(t, rr)
		assert.Equal(t, errors.ErrCodeInternal, env.Error.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name    string  `validate:"required"`
		Percent float64 `validate:"gte=0,lte=100"`
		Type    string  `validate:"oneof=alcohol mixer"`
	}

	// Arrange
	err := validator.New().Struct(payload{Percent: 120, Type: "juice"})
	var verrs validator.ValidationErrors
	require.True(t, stdErrors.As(err, &verrs))
	rr := httptest.NewRecorder()

	// Act
	response.ValidationError(rr, verrs)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, errors.ErrCodeValidation, env.Error.Code)
	assert.Equal(t, []string{
		"Field Name is required",
		"Field Percent must be at most 100",
		"Field Type must be one of: alcohol mixer",
	}, env.Error.Details)
}
