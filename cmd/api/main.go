package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/honeyshop/honeyshop-backend/api/middleware"
	"github.com/honeyshop/honeyshop-backend/api/routes"
	"github.com/honeyshop/honeyshop-backend/internal/auth"
	"github.com/honeyshop/honeyshop-backend/internal/cart"
	"github.com/honeyshop/honeyshop-backend/internal/catalog"
	"github.com/honeyshop/honeyshop-backend/internal/checkout"
	"github.com/honeyshop/honeyshop-backend/internal/inventory"
	"github.com/honeyshop/honeyshop-backend/internal/users"
	"github.com/honeyshop/honeyshop-backend/pkg/auth/session"
	"github.com/honeyshop/honeyshop-backend/pkg/config"
	"github.com/honeyshop/honeyshop-backend/pkg/db"
	"github.com/honeyshop/honeyshop-backend/pkg/kvstore"
	"github.com/honeyshop/honeyshop-backend/pkg/logger"
	"github.com/honeyshop/honeyshop-backend/pkg/metrics"
	"github.com/honeyshop/honeyshop-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var closers []func() error
	defer func() {
		errs := make([]error, 0, len(closers))
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		if err := multierr.Combine(errs...); err != nil {
			logg.Error(context.Background(), "error during shutdown", err)
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
	}

	store, err := buildStore(context.Background(), cfg, logg, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap snapshot store", err)
		os.Exit(1)
	}
	closers = append(closers, store.Close)

	var sessionStore session.Store
	if redisClient != nil {
		sessionStore, err = session.NewRedisStore(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create session store", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, sessions are in-memory")
		sessionStore = session.NewMemoryStore()
	}

	sessionManager, err := session.NewManager(sessionStore, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	usersRepo, err := users.NewRepository(store, cfg.Storage.PutAttempts)
	if err != nil {
		logg.Error(context.Background(), "failed to create user repository", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(usersRepo, sessionManager, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	inventoryService, err := inventory.NewService(store, cfg.Storage.PutAttempts)
	if err != nil {
		logg.Error(context.Background(), "failed to create inventory service", err)
		os.Exit(1)
	}

	if err := inventoryService.Initialize(context.Background(), catalog.SeedItems()); err != nil {
		logg.Error(context.Background(), "failed to seed inventory", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	carts := cart.NewRegistry()

	checkoutService, err := checkout.NewService(store, inventoryService, carts, checkoutMetrics, cfg.Storage.PutAttempts)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	storageProbe := func(ctx context.Context) error {
		_, err := store.Get(ctx, kvstore.KeyInventory)
		return err
	}

	var rateLimiter middleware.RateLimiterStore
	if redisClient != nil {
		rateLimiter = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting is disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			storageProbe,
			registry,
			httpMetrics,
			sessionManager,
			rateLimiter,
			authService,
			inventoryService,
			checkoutService,
			carts,
			usersRepo,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildStore(ctx context.Context, cfg *config.Config, logg *logger.Logger, redisClient *redis.Client) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile:
		return kvstore.NewFile(cfg.Storage.DataDir)
	case config.StorageBackendRedis:
		if redisClient == nil {
			return nil, errRedisRequired
		}
		return kvstore.NewRedis(redisClient.Raw())
	case config.StorageBackendGorm:
		dbClient, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewGorm(dbClient.DB())
	default:
		return nil, errUnknownBackend
	}
}

var (
	errRedisRequired  = errors.New("redis must be configured for the redis storage backend")
	errUnknownBackend = errors.New("unknown storage backend")
)
