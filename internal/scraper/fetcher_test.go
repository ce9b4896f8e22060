package scraper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/scraper"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Run("Success - sends browser user agent", func(t *testing.T) {
		// Arrange
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<h1>ok</h1>"))
		}))
		defer srv.Close()

		f := scraper.NewHTTPFetcher(scraper.FetcherConfig{})

		// Act
		body, err := f.Fetch(context.Background(), srv.URL)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "<h1>ok</h1>", string(body))
		assert.Equal(t, scraper.DefaultUserAgent, gotUA)
	})

	t.Run("Success - body is capped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer srv.Close()

		f := scraper.NewHTTPFetcher(scraper.FetcherConfig{MaxBodyBytes: 10})

		body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, body, 10)
	})

	t.Run("Failure - non 2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := scraper.NewHTTPFetcher(scraper.FetcherConfig{})

		_, err := f.Fetch(context.Background(), srv.URL)

		var fe *scraper.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, http.StatusNotFound, fe.StatusCode)
		assert.Equal(t, srv.URL, fe.URL)
	})

	t.Run("Failure - timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		f := scraper.NewHTTPFetcher(scraper.FetcherConfig{Timeout: 50 * time.Millisecond})

		_, err := f.Fetch(context.Background(), srv.URL)

		var fe *scraper.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Zero(t, fe.StatusCode)
		assert.Error(t, fe.Unwrap())
	})

	t.Run("Failure - unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		f := scraper.NewHTTPFetcher(scraper.FetcherConfig{Timeout: time.Second})

		_, err := f.Fetch(context.Background(), url)

		var fe *scraper.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Zero(t, fe.StatusCode)
	})
}
