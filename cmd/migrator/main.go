package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/config"
)

func main() {
	statusOnly := flag.Bool("status", false, "print the current schema version without migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json", core.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider(nil)

	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrations := dbManager.MigrationManager()

	before, err := migrations.GetCurrentVersion(ctx)
	if err != nil {
		appLogger.Error("Failed to read schema version", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	if *statusOnly {
		appLogger.Info("Schema status", map[string]any{
			"current": before,
			"latest":  migration.CurrentSchemaVersion,
		})
		return
	}

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	appLogger.Info("Migrations complete", map[string]any{
		"from": before,
		"to":   migration.CurrentSchemaVersion,
	})
}
