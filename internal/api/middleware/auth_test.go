package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(userID, email string, duration time.Duration, key []byte, method jwt.SigningMethod) (string, error) {
	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(method, claims).SignedString(key)
}

func newRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := "user-123"
	userEmail := "test@example.com"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userEmail, claims.Email)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	sign := func(d time.Duration, key []byte, method jwt.SigningMethod) string {
		token, err := createTestToken(userID, userEmail, d, key, method)
		require.NoError(t, err)

		return "Bearer " + token
	}

	unauthorized := func(msg string) string {
		return `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "` + msg + `"}}`
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{"Success - Valid Token", sign(time.Hour, testJwtKey, jwt.SigningMethodHS256), http.StatusOK, `{"success": true}`},
		{"Fail - Missing Authorization Header", "", http.StatusUnauthorized, unauthorized("Authorization header is required")},
		{"Fail - No Bearer prefix", "InvalidTokenFormat", http.StatusUnauthorized, unauthorized("Invalid authorization format")},
		{"Fail - Only Bearer", "Bearer ", http.StatusUnauthorized, unauthorized("Invalid or expired token")},
		{"Fail - Malformed Token", "Bearer not.a.valid.token", http.StatusUnauthorized, unauthorized("Invalid or expired token")},
		{"Fail - Wrong Signing Key", sign(time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256), http.StatusUnauthorized, unauthorized("Invalid or expired token")},
		{"Fail - Wrong Signing Method", sign(time.Hour, testJwtKey, jwt.SigningMethodHS512), http.StatusUnauthorized, unauthorized("Invalid or expired token")},
		{"Fail - Expired Token", sign(-time.Hour, testJwtKey, jwt.SigningMethodHS256), http.StatusUnauthorized, unauthorized("Invalid or expired token")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(next).ServeHTTP(rr, newRequest(tc.authHeader))

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestAuthMiddleware_Identify(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	t.Run("Success - Anonymous request passes through", func(t *testing.T) {
		// Arrange
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := middleware.ClaimsFromContext(r.Context())
			assert.False(t, ok)
			called = true
		})
		rr := httptest.NewRecorder()

		// Act
		authMiddleware.Identify(next).ServeHTTP(rr, newRequest(""))

		// Assert
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Fail - Bad token is rejected", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		})
		rr := httptest.NewRecorder()

		// Act
		authMiddleware.Identify(next).ServeHTTP(rr, newRequest("Bearer garbage"))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
