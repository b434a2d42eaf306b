package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/cache"
	portsrepo "github.com/SscSPs/tt99_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/core/services"
	"github.com/SscSPs/tt99_ledger/internal/handlers"
	"github.com/SscSPs/tt99_ledger/internal/middleware"
	"github.com/SscSPs/tt99_ledger/internal/platform/config"
	"github.com/SscSPs/tt99_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/tt99_ledger/internal/repositories/memory"
	"github.com/SscSPs/tt99_ledger/internal/seed"
	"github.com/SscSPs/tt99_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title TT99 Ledger API
// @version 1.0
// @description Double-entry general ledger core: chart of accounts, accounting periods, journal posting and the general ledger report.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	repos, closeStorage, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	var redisClient *redis.Client
	var chart portsrepo.ChartOfAccounts
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		chart = cache.NewChartCache(cache.NewRedisStore(redisClient), repos.AccountRepo, cfg.ChartCacheTTL)
		logger.Info("Chart of accounts cache enabled", slog.Duration("ttl", cfg.ChartCacheTTL))
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos, chart)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The in-memory store starts empty, so it always gets the default chart.
	if cfg.SeedChartOnStart || cfg.StorageDriver == config.StorageMemory {
		if err := seedChart(ctx, serviceContainer.Account, logger); err != nil {
			logger.Error("Failed to seed chart of accounts", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories returns the repositories for the configured driver and a func releasing them.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; postings are lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

func seedChart(ctx context.Context, seeder portssvc.AccountSeederSvc, logger *slog.Logger) error {
	accounts, err := seed.DefaultChart()
	if err != nil {
		return err
	}
	inserted, err := seeder.SeedChart(ctx, accounts)
	if err != nil {
		return err
	}
	logger.Info("Chart of accounts seeded", slog.Int("accounts", len(accounts)), slog.Int("inserted", inserted))
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
