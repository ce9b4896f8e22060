package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
)

func TestLogging(t *testing.T) {

	t.Run("Success - Correlation ID generated and status captured", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NotNil(t, middleware.LoggerFromContext(r.Context()))
			w.WriteHeader(http.StatusTeapot)
		})
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/alcohol", nil))

		// Assert
		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Success - Incoming correlation ID kept", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rr := httptest.NewRecorder()

		// Act
		middleware.Logging(http.NotFoundHandler()).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
	})

	t.Run("Success - Server errors logged at error level", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(previous) })

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream"))
		})

		// Act
		middleware.Logging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/scraper/scrape", nil))

		// Assert
		out := buf.String()
		assert.Contains(t, out, `"level":"ERROR"`)
		assert.Contains(t, out, `"http_status":502`)
		assert.Contains(t, out, `"bytes":8`)
	})
}

func TestCORS(t *testing.T) {

	t.Run("Success - Preflight answered", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("preflight must not reach the handler")
		})
		rr := httptest.NewRecorder()

		// Act
		middleware.CORS(next).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/v1/cocktails", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Success - Headers on normal request", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		middleware.CORS(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}
