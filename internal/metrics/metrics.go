package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bartracker"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current Number of HTTP requests being processed.",
		},
	)

	scrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scraper_requests_total",
			Help:      "Total number of product page scrapes by retailer and outcome.",
		},
		[]string{"retailer", "outcome"},
	)
	scrapeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scraper_request_duration_seconds",
			Help:      "Duration of product page scrapes in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"retailer"},
	)

	refreshItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_refresh_items_total",
			Help:      "Items processed by bulk price refresh, by result.",
		},
		[]string{"result"},
	)
)

// RecordScrape records one scrape attempt. outcome is "success" or an error kind.
func RecordScrape(retailer, outcome string, d time.Duration) {
	scrapesTotal.WithLabelValues(retailer, outcome).Inc()
	scrapeDuration.WithLabelValues(retailer).Observe(d.Seconds())
}

// RecordRefresh adds the per-item results of a bulk price refresh.
func RecordRefresh(updated, unchanged, failed int) {
	refreshItemsTotal.WithLabelValues("updated").Add(float64(updated))
	refreshItemsTotal.WithLabelValues("unchanged").Add(float64(unchanged))
	refreshItemsTotal.WithLabelValues("failed").Add(float64(failed))
}

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

type codeRecorder struct {
	http.ResponseWriter
	code int
}

func (c *codeRecorder) WriteHeader(code int) {
	c.code = code
	c.ResponseWriter.WriteHeader(code)
}

// Middleware must wrap the mux directly so the matched pattern is visible after routing.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rec := &codeRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := routePattern(r)
		httpRequestsTotal.WithLabelValues(strconv.Itoa(rec.code), r.Method, path).Inc()
		httpRequestsDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// routePattern keeps label cardinality bounded: the mux pattern without its method, or "unmatched".
func routePattern(r *http.Request) string {
	if r.Pattern == "" {
		return "unmatched"
	}

	if _, path, ok := strings.Cut(r.Pattern, " "); ok {
		return path
	}

	return r.Pattern
}

func Handler() http.Handler {
	return promhttp.Handler()
}
