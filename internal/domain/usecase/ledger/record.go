package ledger

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Record appends a transaction for username and returns its generated ID
func (u *UseCase) Record(
	ctx context.Context,
	username string,
	txType entity.TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
) (uint64, error) {
	if err := u.validator.ValidateTransaction(username, txType, amount, date); err != nil {
		u.logger.Warn("Rejected transaction", map[string]any{
			"username": username,
			"type":     txType.String(),
			"error":    err.Error(),
		})
		return 0, err
	}

	// The owner must be registered
	exists, err := u.userRepo.Exists(ctx, username)
	if err != nil {
		u.logger.Error("Failed to check owner existence", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return 0, err
	}
	if !exists {
		return 0, errs.ErrUserNotFound
	}

	tx, err := entity.NewTransaction(username, txType, amount, description, date, u.timeProvider)
	if err != nil {
		return 0, err
	}

	if err := u.txRepo.Create(ctx, tx); err != nil {
		u.logger.Error("Failed to record transaction", map[string]any{
			"username": username,
			"type":     txType.String(),
			"amount":   tx.FormattedAmount(),
			"error":    err.Error(),
		})
		return 0, err
	}

	u.logger.Info("Transaction recorded", map[string]any{
		"id":       tx.ID,
		"username": username,
		"type":     txType.String(),
		"amount":   tx.FormattedAmount(),
		"date":     tx.FormattedDate(),
	})

	return tx.ID, nil
}
