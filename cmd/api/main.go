package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/usecase/credential"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json", core.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	// Location is already validated by LoadConfig
	loc, _ := cfg.Location()
	tp := timeProvider.NewRealTimeProvider(loc)

	ctx := context.Background()

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)

	// Use cases
	credentialUseCase := credential.NewCredentialUseCase(userRepo, security.NewBcryptHasher(cfg.Auth.BcryptCost), tp, appLogger)
	ledgerUseCase := ledger.NewLedgerUseCase(transactionRepo, userRepo, tp, appLogger)

	tokenService, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token service", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	router := routes.NewRouter(appLogger, tp, cfg.Server.AllowedOrigins, routes.Handlers{
		Auth:   handler.NewAuthHandler(credentialUseCase, tokenService, appLogger),
		Ledger: handler.NewLedgerHandler(ledgerUseCase, tp, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
	}, middleware.Auth(tokenService, appLogger))

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": server.Addr,
			"env":     cfg.Environment,
			"driver":  cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
