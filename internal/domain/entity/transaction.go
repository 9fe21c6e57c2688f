package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of ledger entry kinds
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// IsValid reports whether the type is one of the known kinds
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// String returns the stored representation
func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType maps user input onto a TransactionType, ignoring case
func ParseTransactionType(value string) (TransactionType, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.EqualFold(value, string(TypeIncome)):
		return TypeIncome, nil
	case strings.EqualFold(value, string(TypeExpense)):
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, value)
	}
}

// Transaction represents an immutable ledger entry owned by a single user
type Transaction struct {
	ID          uint64          // Store-assigned identifier, zero until persisted
	Username    string          // Owner of the transaction
	Type        TransactionType // Income or Expense
	Amount      decimal.Decimal // Non-negative, at most two decimal places
	Description string          // Free text
	Date        time.Time       // Calendar date (midnight UTC)
	CreatedAt   time.Time       // When the entry was recorded
}

// NewTransaction creates a new transaction with validation of every field
func NewTransaction(
	username string,
	txType TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	if !txType.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", errs.ErrInvalidDate)
	}

	return &Transaction{
		Username:    username,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Date:        NormalizeDate(date),
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsIncome returns true if this transaction increases the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if this transaction decreases the balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// FormattedAmount returns the amount with two decimal places
func (t *Transaction) FormattedAmount() string {
	return FormatAmount(t.Amount)
}

// FormattedDate returns the date as YYYY-MM-DD
func (t *Transaction) FormattedDate() string {
	return FormatDate(t.Date)
}
