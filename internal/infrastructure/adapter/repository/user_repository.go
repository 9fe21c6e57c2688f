package repository

import (
	"context"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return entity.RestoreUser(userModel.Username, userModel.PasswordHash, userModel.CreatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, username string) error {
	switch r.errorClassifier.Classify(err) {
	case NotFoundError:
		return errs.ErrUserNotFound
	case DuplicateKeyError:
		r.logger.Warn("Duplicate username", map[string]any{
			"username": username,
		})
		return errs.ErrUserExists
	}

	r.logger.Error("Database error on users", map[string]any{
		"operation": operation,
		"username":  username,
		"error":     err.Error(),
	})
	return errs.NewStorageError(operation, "users", err)
}

// Create inserts a new user; a taken username yields ErrUserExists
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash(),
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("insert", err, user.Username)
	}

	r.logger.Debug("User stored", map[string]any{
		"username": user.Username,
	})

	return nil
}

// GetByUsername retrieves a user by exact, case-sensitive username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Take(&userModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("select", result.Error, username)
	}

	return r.modelToEntity(&userModel), nil
}

// Exists checks whether a user row with this username is present
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("exists", result.Error, username)
	}

	return count > 0, nil
}
