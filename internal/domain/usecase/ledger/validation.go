package ledger

import (
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/shopspring/decimal"
)

// TransactionValidator provides validation for ledger entries before they reach storage
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateTransaction validates all transaction fields.
// Failures are returned as *errs.TransactionError wrapping the matching sentinel.
func (v *TransactionValidator) ValidateTransaction(
	username string,
	txType entity.TransactionType,
	amount decimal.Decimal,
	date time.Time,
) error {
	reject := func(reason string, err error) error {
		return errs.NewTransactionError(username, txType.String(), amount.String(), reason, err)
	}

	if err := entity.ValidateUsername(username); err != nil {
		return reject("owner is required", err)
	}

	if !txType.IsValid() {
		return reject("type must be Income or Expense", errs.ErrInvalidTransactionType)
	}

	if err := entity.ValidateAmount(amount); err != nil {
		return reject("amount out of range", err)
	}

	if date.IsZero() {
		return reject("date is required", errs.ErrInvalidDate)
	}

	return nil
}
