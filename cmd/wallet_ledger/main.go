package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/adapters/database/pgsql"
	"github.com/SscSPs/wallet_ledger/internal/adapters/events"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
	"github.com/SscSPs/wallet_ledger/internal/handlers"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
	"github.com/SscSPs/wallet_ledger/internal/platform/metrics"
	"github.com/SscSPs/wallet_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Wallet Ledger API
// @version 1.0
// @description Multi-currency wallet ledger: wallets, exchange rates and payments.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	registry, err := cfg.CurrencyRegistry()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uow, repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = events.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
	}

	var publisher portssvc.LedgerEventPublisher = events.NewLogPublisher(logger)
	if rdb != nil {
		publisher = events.NewRedisPublisher(rdb, cfg.EventsChannel)
		logger.Info("Publishing ledger events to redis", slog.String("channel", cfg.EventsChannel))
	}

	collector := metrics.NewCollector(logger)
	serviceContainer := services.NewServiceContainer(cfg, registry, uow, repos,
		services.WithEventPublisher(publisher),
		services.WithMetrics(collector),
	)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if _, err := serviceContainer.User.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return err
		}
	}

	router, err := newRouter(cfg, logger, serviceContainer, collector, rdb)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("base_currency", registry.Base()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects the configured storage and returns its unit of work,
// its plain repositories and a function that releases it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.UnitOfWork, portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("Using in-memory storage. Data is lost on restart.")
		store := memory.NewStore()
		return store, store.Repositories(), func() {}, nil
	}

	level, err := pgsql.ParseIsolationLevel(cfg.TxIsolation)
	if err != nil {
		return nil, portsrepo.RepositoryProvider{}, nil, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return nil, portsrepo.RepositoryProvider{}, nil, err
	}

	uow := pgsql.NewUnitOfWork(dbPool, pgsql.WithIsolationLevel(level))
	return uow, pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, serviceContainer *portssvc.ServiceContainer, collector *metrics.Collector, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}

	limiter, err := middleware.NewLimiter(cfg.RateLimit, rdb)
	if err != nil {
		return nil, err
	}

	// Global middleware (cors, logging, recovery, metrics, rate limiting)
	r.Use(
		cors.New(corsConfig),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.HTTPMetrics(collector),
		middleware.RateLimit(limiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, collector)
	return r, nil
}
