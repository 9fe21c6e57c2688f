package dto

import (
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
)

// TransactionRequest represents the API request for recording a transaction.
// Type is ignored by the income and expense endpoints; an empty date means today.
type TransactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// TransactionCreatedResponse returns the ID assigned to a new transaction
type TransactionCreatedResponse struct {
	ID uint64 `json:"id"`
}

// TransactionResponse is a transaction as rendered by the list and report endpoints
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TransactionListResponse wraps the transactions of the session user
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionResponses maps domain transactions onto their API form, never returning nil
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		out = append(out, TransactionResponse{
			ID:          tx.ID,
			Type:        tx.Type.String(),
			Amount:      tx.FormattedAmount(),
			Description: tx.Description,
			Date:        tx.FormattedDate(),
			CreatedAt:   tx.CreatedAt,
		})
	}
	return out
}
