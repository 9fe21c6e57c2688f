package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		Username:    transaction.Username,
		Type:        transaction.Type.String(),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.FormattedDate(),
		CreatedAt:   transaction.CreatedAt,
	}
}

// modelToEntity converts a database model back to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) (*entity.Transaction, error) {
	date, err := entity.ParseDate(m.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction %d has unreadable date %q", errs.ErrInternalServer, m.ID, m.Date)
	}

	return &entity.Transaction{
		ID:          m.ID,
		Username:    m.Username,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount.Round(entity.MaxDecimalPlaces),
		Description: m.Description,
		Date:        date,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, username string) error {
	if r.errorClassifier.Classify(err) == ForeignKeyError {
		r.logger.Warn("Transaction owner does not exist", map[string]any{
			"username": username,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error("Database error on transactions", map[string]any{
		"operation": operation,
		"username":  username,
		"error":     err.Error(),
	})
	return errs.NewStorageError(operation, "transactions", err)
}

// Create appends a transaction and stores the generated ID on it
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	// The owner row is referenced, never written
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("insert", result.Error, transaction.Username)
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction stored", map[string]any{
		"id":       transaction.ID,
		"username": transaction.Username,
	})
	return nil
}

// ListByUsername returns the user's transactions in insertion order
func (r *TransactionRepository) ListByUsername(ctx context.Context, username string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id ASC").
		Find(&models)

	if result.Error != nil {
		return nil, r.handleDatabaseError("select", result.Error, username)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		tx, err := r.modelToEntity(&models[i])
		if err != nil {
			r.logger.Error("Failed to decode transaction", map[string]any{
				"id":    models[i].ID,
				"error": err.Error(),
			})
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
