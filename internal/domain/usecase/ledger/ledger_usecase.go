package ledger

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/usecase"
)

// UseCase records transactions and derives per-user summaries
type UseCase struct {
	txRepo       persistence.TransactionRepository
	userRepo     persistence.UserRepository
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerUseCase creates a new ledger UseCase
func NewLedgerUseCase(
	txRepo persistence.TransactionRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		txRepo:       txRepo,
		userRepo:     userRepo,
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListFor returns every transaction owned by username in insertion order
func (u *UseCase) ListFor(ctx context.Context, username string) ([]*entity.Transaction, error) {
	if strings.TrimSpace(username) == "" {
		return []*entity.Transaction{}, nil
	}

	transactions, err := u.txRepo.ListByUsername(ctx, username)
	if err != nil {
		u.logger.Error("Failed to list transactions", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}
	if transactions == nil {
		transactions = []*entity.Transaction{}
	}

	return transactions, nil
}

// Summarize totals the given transactions
func (u *UseCase) Summarize(transactions []*entity.Transaction) entity.Summary {
	return entity.Summarize(transactions)
}

// Report lists the user's transactions together with their summary
func (u *UseCase) Report(ctx context.Context, username string) (*usecase.Report, error) {
	transactions, err := u.ListFor(ctx, username)
	if err != nil {
		return nil, err
	}

	return &usecase.Report{
		Username:     username,
		Transactions: transactions,
		Summary:      u.Summarize(transactions),
	}, nil
}
