package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const ScrapeKeyPrefix = "scrape"

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// ScrapeKey hashes the trimmed product URL so query strings and long paths give a fixed-size key.
func ScrapeKey(productURL string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(productURL)))
	return Key(ScrapeKeyPrefix, hex.EncodeToString(sum[:]))
}
