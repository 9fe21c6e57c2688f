package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Username    string          `gorm:"not null;size:64"`
	Type        string          `gorm:"not null;size:16"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Description string          `gorm:"type:text"`
	Date        string          `gorm:"not null;size:10"` // YYYY-MM-DD
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
