package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step upgrades the schema from one version to the next
type step struct {
	from    string
	to      string
	details string
	apply   func(ctx context.Context, db *gorm.DB) error
}

// steps are applied in order starting after the recorded version
var steps = []step{
	{
		from:    "",
		to:      "1.0.0",
		details: "users and transactions",
		apply: func(ctx context.Context, db *gorm.DB) error {
			return db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Transaction{})
		},
	},
	{
		from:    "1.0.0",
		to:      "1.1.0",
		details: "per-user listing index",
		apply: func(ctx context.Context, db *gorm.DB) error {
			return db.WithContext(ctx).Exec(
				"CREATE INDEX IF NOT EXISTS idx_transactions_username_id ON transactions (username, id)",
			).Error
		},
	},
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema up to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	pending, err := pendingSteps(currentVersion)
	if err != nil {
		return err
	}

	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"from": s.from,
			"to":   s.to,
		})

		if err := s.apply(ctx, m.db); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"error": err.Error(),
				"to":    s.to,
			})
			return fmt.Errorf("migration to %s failed: %w", s.to, err)
		}

		if err := m.setVersion(ctx, s.to, s.details); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": s.to,
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pendingSteps returns the steps that follow currentVersion
func pendingSteps(currentVersion string) ([]step, error) {
	for i, s := range steps {
		if s.from == currentVersion {
			return steps[i:], nil
		}
	}
	return nil, fmt.Errorf("unknown schema version %q", currentVersion)
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if !m.db.WithContext(ctx).Migrator().HasTable(&model.MigrationVersion{}) {
		return "", nil
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // No version found
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}
