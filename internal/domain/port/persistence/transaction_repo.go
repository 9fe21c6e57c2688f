package persistence

import (
	"context"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
)

// TransactionRepository defines the append-only ledger storage operations
type TransactionRepository interface {
	// Create appends a transaction and sets its generated ID on success
	//
	// Possible errors:
	// - ErrUserNotFound: If the owning username is not a registered user
	// - ErrStorageUnavailable: If the storage substrate cannot be written
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUsername returns every transaction owned by username in insertion order.
	// An owner without transactions yields an empty slice.
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the storage substrate cannot be read
	ListByUsername(ctx context.Context, username string) ([]*entity.Transaction, error)
}
