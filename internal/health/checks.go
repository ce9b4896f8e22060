package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"

	"github.com/bartracker/bar-price-tracker/internal/config"
	"github.com/bartracker/bar-price-tracker/internal/docstore"
)

const Version = "1.0.0"

// NewHealthHandler checks redis always, postgres through health-go when that driver is used,
// and any other document store through its own Ping.
func NewHealthHandler(cfg *config.Config, store docstore.Store) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		},
	}

	switch cfg.Store.Driver {
	case "postgres":
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	default:
		checks = append(checks, health.Config{
			Name:      "document-store",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if store == nil {
					return fmt.Errorf("document store is not initialized")
				}

				return store.Ping(ctx)
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "bar-price-tracker",
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
