package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bartracker/bar-price-tracker/internal/config"
	"github.com/bartracker/bar-price-tracker/internal/docstore"
)

type Repositories struct {
	Store        docstore.Store
	Alcohol      AlcoholItemRepository
	Ingredient   IngredientRepository
	Cocktail     CocktailRepository
	PriceHistory PriceHistoryRepository
	User         UserRepository
}

// New opens the document store selected by store.driver and builds every repository on it.
func New(ctx context.Context, cfg *config.Config) (*Repositories, error) {

	var store docstore.Store

	switch cfg.Store.Driver {
	case "postgres":
		db, err := docstore.OpenPostgres(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}

		pg := docstore.NewPostgresStore(db)
		pg.QueryTimeout = cfg.Database.QueryTimeout
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}

		store = pg
	case "firestore":
		fs, err := docstore.OpenFirestore(ctx, &cfg.Firestore)
		if err != nil {
			return nil, err
		}

		store = fs
	case "memory":
		store = docstore.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	slog.Info("document store ready", slog.String("driver", cfg.Store.Driver))

	return NewFromStore(store), nil
}

func NewFromStore(store docstore.Store) *Repositories {
	return &Repositories{
		Store:        store,
		Alcohol:      NewAlcoholItemRepo(store),
		Ingredient:   NewIngredientRepo(store),
		Cocktail:     NewCocktailRepo(store),
		PriceHistory: NewPriceHistoryRepo(store),
		User:         NewUserRepo(store),
	}
}

func (r *Repositories) Close() error {
	return r.Store.Close()
}
