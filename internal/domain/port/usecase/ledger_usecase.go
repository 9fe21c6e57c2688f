package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Report is the dashboard/report view of a user's ledger
type Report struct {
	Username     string
	Transactions []*entity.Transaction
	Summary      entity.Summary
}

// LedgerUseCase defines transaction recording, retrieval and aggregation
type LedgerUseCase interface {
	// Record appends a transaction for username and returns its generated ID
	Record(ctx context.Context, username string, txType entity.TransactionType, amount decimal.Decimal, description string, date time.Time) (uint64, error)

	// ListFor returns all transactions owned by username in insertion order
	ListFor(ctx context.Context, username string) ([]*entity.Transaction, error)

	// Summarize aggregates income, expense and balance over the given transactions
	Summarize(transactions []*entity.Transaction) entity.Summary

	// Report lists the user's transactions together with their summary
	Report(ctx context.Context, username string) (*Report, error)
}
