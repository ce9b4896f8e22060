package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/cache"
	"github.com/bartracker/bar-price-tracker/internal/errors"
	"github.com/bartracker/bar-price-tracker/internal/metrics"
	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/pricing"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
	"github.com/bartracker/bar-price-tracker/internal/scraper"
)

type ScraperService interface {
	ScrapeProduct(ctx context.Context, url string) (*models.ScrapedProduct, error)
	RefreshPrices(ctx context.Context, userID string) (*models.RefreshSummary, error)
}

type ScraperOptions struct {
	Workers  int
	CacheTTL time.Duration
}

type scraperService struct {
	scraper  scraper.Scraper
	items    repository.AlcoholItemRepository
	history  repository.PriceHistoryRepository
	cache    cache.Cache
	workers  int
	cacheTTL time.Duration
	now      func() time.Time
}

// NewScraperService wires the scraper to storage. cache may be nil.
func NewScraperService(s scraper.Scraper, items repository.AlcoholItemRepository, history repository.PriceHistoryRepository, c cache.Cache, opts ScraperOptions) ScraperService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	return &scraperService{
		scraper:  s,
		items:    items,
		history:  history,
		cache:    c,
		workers:  opts.Workers,
		cacheTTL: opts.CacheTTL,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *scraperService) ScrapeProduct(ctx context.Context, url string) (*models.ScrapedProduct, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := cache.ScrapeKey(url)

	if s.cache != nil {
		var cached models.ScrapedProduct

		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Warn("Scrape cache read failed", slog.String("url", url), slog.Any("error", err))
		} else if found {
			logger.Debug("Scrape cache hit", slog.String("url", url))
			return &cached, nil
		}
	}

	product, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, scrapeError(err)
	}

	s.cacheProduct(ctx, key, product)

	return product, nil
}

type refreshResult struct {
	updated bool
	err     error
}

// RefreshPrices re-scrapes every item of the owner that has a source URL. Items are processed by
// a bounded pool; results are written by index and merged after all workers finish.
func (s *scraperService) RefreshPrices(ctx context.Context, userID string) (*models.RefreshSummary, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("userId", userID))

	items, err := s.items.ListWithSourceURL(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch alcohol items").WithError(err)
	}

	results := make([]refreshResult, len(items))

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, item := range items {
		g.Go(func() error {
			results[i] = s.refreshItem(ctx, item)
			return nil
		})
	}

	_ = g.Wait()

	summary := &models.RefreshSummary{TotalConsidered: len(items), Errors: []string{}}
	failed := 0

	for i, res := range results {
		switch {
		case res.err != nil:
			failed++
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("failed to update %s (%s): %v", items[i].Name, items[i].ID, res.err))
		case res.updated:
			summary.UpdatedCount++
		}
	}

	metrics.RecordRefresh(summary.UpdatedCount, len(items)-summary.UpdatedCount-failed, failed)

	logger.Info("Price refresh finished",
		slog.Int("considered", summary.TotalConsidered),
		slog.Int("updated", summary.UpdatedCount),
		slog.Int("failed", failed))

	return summary, nil
}

func (s *scraperService) refreshItem(ctx context.Context, item *models.AlcoholItem) refreshResult {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("itemId", item.ID))

	if !item.HasProductURL() {
		return refreshResult{}
	}

	product, err := s.scraper.Scrape(ctx, *item.ProductURL)
	if err != nil {
		return refreshResult{err: err}
	}

	s.cacheProduct(ctx, cache.ScrapeKey(*item.ProductURL), product)

	if product.Price == nil {
		logger.Debug("No price found on product page", slog.String("url", *item.ProductURL))
		return refreshResult{}
	}

	newPrice := *product.Price
	if newPrice == item.Price {
		return refreshResult{}
	}

	ppl, err := pricing.PricePerLiter(newPrice, item.Size)
	if err != nil {
		return refreshResult{err: err}
	}

	at := s.now()

	if err := s.items.UpdatePrice(ctx, item.ID, newPrice, ppl, at); err != nil {
		return refreshResult{err: err}
	}

	entry := &models.PriceHistory{
		ItemID:   item.ID,
		ItemType: models.ItemTypeAlcohol,
		Price:    newPrice,
		Shop:     item.Shop,
		Date:     at,
	}

	if err := s.history.Append(ctx, entry); err != nil {
		logger.Warn("Price updated but history append failed", slog.Any("error", err))
	}

	logger.Info("Price updated", slog.Float64("old", item.Price), slog.Float64("new", newPrice))

	return refreshResult{updated: true}
}

func (s *scraperService) cacheProduct(ctx context.Context, key string, product *models.ScrapedProduct) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Scrape cache write failed", slog.Any("error", err))
	}
}

func scrapeError(err error) error {

	if stdErrors.Is(err, scraper.ErrUnsupportedSource) {
		return errors.UnsupportedSourceError("Unsupported retailer").WithError(err)
	}

	var fetchErr *scraper.FetchError
	if stdErrors.As(err, &fetchErr) {
		return errors.FetchFailureError("Failed to fetch product page").WithDetail(fetchErr.Error()).WithError(err)
	}

	return errors.InternalError("Failed to scrape product").WithError(err)
}
