package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/clarity-finance/clarity-backend/internal/core/services"
	"github.com/clarity-finance/clarity-backend/internal/demodata"
	"github.com/clarity-finance/clarity-backend/internal/dto"
	"github.com/clarity-finance/clarity-backend/internal/handlers"
	plaidclient "github.com/clarity-finance/clarity-backend/internal/integrations/plaid"
	"github.com/clarity-finance/clarity-backend/internal/middleware"
	"github.com/clarity-finance/clarity-backend/internal/platform/config"
	"github.com/clarity-finance/clarity-backend/internal/repositories/database/pgsql"
	"github.com/clarity-finance/clarity-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Clarity Finance Backend API
// @version 1.0
// @description Personal finance backend: bank linking, transaction storage and dashboard reporting.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	bankingProvider, err := plaidclient.NewClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv)
	if err != nil {
		logger.Error("Failed to initialize banking provider client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	demoTransactions, err := demodata.Load()
	if err != nil {
		logger.Error("Failed to load demo dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterBindingValidators(); err != nil {
		logger.Error("Failed to register binding validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics, security headers, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.Metrics(),
		secure.New(secure.Config{
			ContentTypeNosniff: true,
			BrowserXssFilter:   true,
			FrameDeny:          true,
			ReferrerPolicy:     "no-referrer",
		}),
		cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins(),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, bankingProvider, demoTransactions)
	limiters := middleware.NewRateLimiters(cfg.TestMode)

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiters)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations using a short-lived
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
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

