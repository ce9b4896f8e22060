package scraper

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/bartracker/bar-price-tracker/internal/metrics"
	"github.com/bartracker/bar-price-tracker/internal/models"
)

type Scraper interface {
	Scrape(ctx context.Context, url string) (*models.ScrapedProduct, error)
}

type scraper struct {
	fetcher Fetcher
}

func New(fetcher Fetcher) Scraper {
	return &scraper{fetcher: fetcher}
}

// Scrape resolves the retailer before any network call, then fetches and extracts.
func (s *scraper) Scrape(ctx context.Context, url string) (*models.ScrapedProduct, error) {
	profile, err := ProfileForURL(url)
	if err != nil {
		metrics.RecordScrape("unknown", "unsupported", 0)
		return nil, err
	}

	start := time.Now()
	retailer := string(profile.Retailer)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		outcome := "fetch_error"

		var fe *FetchError
		if errors.As(err, &fe) && fe.StatusCode != 0 {
			outcome = "bad_status"
		}

		metrics.RecordScrape(retailer, outcome, time.Since(start))

		return nil, err
	}

	product, err := Extract(profile, bytes.NewReader(body))
	if err != nil {
		metrics.RecordScrape(retailer, "parse_error", time.Since(start))
		return nil, err
	}

	product.SourceURL = url

	metrics.RecordScrape(retailer, "success", time.Since(start))

	return product, nil
}
