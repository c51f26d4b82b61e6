package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stabilis-labs/tes_engine/internal/handlers"
	"github.com/stabilis-labs/tes_engine/internal/middleware"
	"github.com/stabilis-labs/tes_engine/internal/platform/config"
	"github.com/stabilis-labs/tes_engine/internal/platform/ticker"
	"github.com/stabilis-labs/tes_engine/internal/repositories/database/pgsql"
	"github.com/stabilis-labs/tes_engine/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title TES Engine API
// @version 1.0
// @description Supply elasticity engine for multi-currency stablecoins.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	engineConfig, err := cfg.EngineConfig()
	if err != nil {
		logger.Error("Invalid engine configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	container, err := services.NewContainer(repos, engineConfig, logger)
	if err != nil {
		logger.Error("Failed to build service container", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Persist the configured currency set so repositories and the ledger agree
	// on what is tracked before the first tick fires.
	seeder := services.NewCurrencyService(repos.CurrencyRepo, repos.LedgerRepo)
	if err := seeder.SeedCurrencies(context.Background(), engineConfig.Currencies); err != nil {
		logger.Error("Failed to seed tracked currencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	// The tick source runs beside the HTTP server and is stopped on SIGINT or
	// SIGTERM. The scheduler itself is synchronous; one goroutine drives it.
	tickCtx, stopTicker := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopTicker()

	tickSource := ticker.New(cfg.TickInterval, 0, logger)
	go tickSource.Run(tickCtx, func(ctx context.Context, height uint64) {
		container.Scheduler.OnTick(ctx, height)
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
