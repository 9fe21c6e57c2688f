package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// DateLayout is the calendar date format used in storage and at the API boundary
const DateLayout = "2006-01-02"

// ValidateAmount checks that an amount is non-negative and has at most two decimal places
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.ErrNegativeAmount
	}

	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return nil
}

// ParseAmount converts a decimal string such as "100", "30.5" or "12.34" into an amount.
// Thousands separators and currency symbols are rejected.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if err := ValidateAmount(value); err != nil {
		return decimal.Zero, err
	}

	return value, nil
}

// FormatAmount renders an amount with exactly two decimal places
// For example:
// - 100 becomes "100.00"
// - 30.5 becomes "30.50"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", errs.ErrInvalidDate)
	}

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", errs.ErrInvalidDate, err.Error())
	}

	return parsed, nil
}

// NormalizeDate drops the clock part, keeping the calendar date at midnight UTC
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
