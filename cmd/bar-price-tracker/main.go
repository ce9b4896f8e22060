package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bartracker/bar-price-tracker/docs"
	"github.com/bartracker/bar-price-tracker/internal/api/handlers"
	"github.com/bartracker/bar-price-tracker/internal/api/middleware"
	"github.com/bartracker/bar-price-tracker/internal/cache"
	"github.com/bartracker/bar-price-tracker/internal/config"
	"github.com/bartracker/bar-price-tracker/internal/health"
	"github.com/bartracker/bar-price-tracker/internal/metrics"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
	"github.com/bartracker/bar-price-tracker/internal/scheduler"
	"github.com/bartracker/bar-price-tracker/internal/scraper"
	service "github.com/bartracker/bar-price-tracker/internal/services"
	"github.com/bartracker/bar-price-tracker/internal/telemetry"
)

//	@title						Bar Price Tracker API
//	@version					1.0
//	@description				Inventory, recipe costing and retailer price tracking for a home or small bar.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Document store setup
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the document store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing document store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Document store closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(ctx, &cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	scrapeCache := cache.NewRedisCacheFromConfig(redisClient, &cfg.Cache)
	defer scrapeCache.Close()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)

	fetcher := scraper.NewHTTPFetcher(scraper.FetcherConfig{
		Timeout:      cfg.Scraper.Timeout,
		UserAgent:    cfg.Scraper.UserAgent,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
	})

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, tokenTTL)
	alcoholService := service.NewAlcoholService(repos.Alcohol, repos.PriceHistory)
	ingredientService := service.NewIngredientService(repos.Ingredient)
	cocktailService := service.NewCocktailService(repos.Cocktail)
	scraperService := service.NewScraperService(scraper.New(fetcher), repos.Alcohol, repos.PriceHistory, scrapeCache,
		service.ScraperOptions{Workers: cfg.Scraper.Workers, CacheTTL: cfg.Scraper.CacheTTL})

	userHandler := handlers.NewUserHandler(userService)
	alcoholHandler := handlers.NewAlcoholHandler(alcoholService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	cocktailHandler := handlers.NewCocktailHandler(cocktailService)
	scraperHandler := handlers.NewScraperHandler(scraperService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, repos.Store)
	if err != nil {
		slog.Error("❌ Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docs.SwaggerInfo.Host = cfg.Addr

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Store.Driver), slog.String("version", health.Version))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())

	routerMux.HandleFunc("GET /api/v1/alcohol", alcoholHandler.ListItems())
	routerMux.HandleFunc("POST /api/v1/alcohol", alcoholHandler.CreateItem())
	routerMux.HandleFunc("GET /api/v1/alcohol/{id}", alcoholHandler.GetItem())
	routerMux.HandleFunc("PUT /api/v1/alcohol/{id}", alcoholHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/alcohol/{id}", alcoholHandler.DeleteItem())
	routerMux.HandleFunc("GET /api/v1/alcohol/{id}/history", alcoholHandler.GetPriceHistory())

	routerMux.HandleFunc("GET /api/v1/ingredients", ingredientHandler.ListIngredients())
	routerMux.HandleFunc("POST /api/v1/ingredients", ingredientHandler.CreateIngredient())
	routerMux.HandleFunc("GET /api/v1/ingredients/{id}", ingredientHandler.GetIngredient())
	routerMux.HandleFunc("PUT /api/v1/ingredients/{id}", ingredientHandler.UpdateIngredient())
	routerMux.HandleFunc("DELETE /api/v1/ingredients/{id}", ingredientHandler.DeleteIngredient())

	routerMux.HandleFunc("GET /api/v1/cocktails", cocktailHandler.ListCocktails())
	routerMux.HandleFunc("POST /api/v1/cocktails", cocktailHandler.CreateCocktail())
	routerMux.HandleFunc("GET /api/v1/cocktails/{id}", cocktailHandler.GetCocktail())
	routerMux.HandleFunc("PUT /api/v1/cocktails/{id}", cocktailHandler.UpdateCocktail())
	routerMux.HandleFunc("DELETE /api/v1/cocktails/{id}", cocktailHandler.DeleteCocktail())

	routerMux.HandleFunc("POST /api/v1/scraper/scrape", scraperHandler.ScrapeProduct())
	routerMux.HandleFunc("POST /api/v1/scraper/update-prices", scraperHandler.UpdatePrices())

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining, innermost first
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = authMiddleware.Identify(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Periodic refresh
	if cfg.Scheduler.Enabled {
		go scheduler.New(userService, scraperService, cfg.Scheduler.Interval).Run(ctx)
	}

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
