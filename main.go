package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/policyradar/policyradar-engine/pkg/config"
	"github.com/policyradar/policyradar-engine/pkg/database"
	"github.com/policyradar/policyradar-engine/pkg/handlers"
	"github.com/policyradar/policyradar-engine/pkg/logging"
	"github.com/policyradar/policyradar-engine/pkg/middleware"
	"github.com/policyradar/policyradar-engine/pkg/repositories"
	"github.com/policyradar/policyradar-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	connStr := cfg.Database.ConnectionString()
	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("database", logging.SanitizeConnectionString(connStr)),
		zap.String("redis", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            connStr,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.String("error", logging.SanitizeError(err)))
	}
	defer db.Close()

	if err := runMigrations(cfg, logger, connStr); err != nil {
		logger.Fatal("Failed to run migrations", zap.String("error", logging.SanitizeError(err)))
	}

	cache, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		// The API serves without a cache; summaries are computed per request.
		logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		cache = nil
	}
	if cache != nil {
		defer cache.Close() //nolint:errcheck
	}

	health := database.NewHealth(db, cache, logger)
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	policyService := services.NewPolicyService(repositories.NewPolicyRepository(db), cache, cacheTTL, logger)
	companyService := services.NewCompanyService(repositories.NewCompanyRepository(db))
	impactService := services.NewImpactService(repositories.NewImpactRepository(db))
	marketService := services.NewMarketService(repositories.NewMarketRepository(db))
	predictionService := services.NewPredictionService(repositories.NewPredictionRepository(db))

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, health, logger).RegisterRoutes(mux)
	handlers.NewPolicyHandler(policyService, logger).RegisterRoutes(mux)
	handlers.NewCompanyHandler(companyService, logger).RegisterRoutes(mux)
	handlers.NewImpactHandler(impactService, logger).RegisterRoutes(mux)
	handlers.NewMarketHandler(marketService, logger).RegisterRoutes(mux)
	handlers.NewPredictionHandler(predictionService, logger).RegisterRoutes(mux)
	handlers.NewAnalyticsHandler(logger).RegisterRoutes(mux)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})
	handler := corsMiddleware.Handler(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting policyradar-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a development logger locally and a production logger
// everywhere else.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// runMigrations applies pending schema migrations through database/sql,
// which golang-migrate requires.
func runMigrations(cfg *config.Config, logger *zap.Logger, connStr string) error {
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open sql connection: %w", err)
	}
	defer sqlDB.Close()

	return database.RunMigrations(sqlDB, cfg.Database.MigrationsPath, logger)
}
