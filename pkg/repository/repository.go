package repository

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
)

// AccountRepository defines the interface for account data access operations.
// Both getters return the account with its balances ordered by balance ID and
// report a missing account as domain.ErrNotFound.
type AccountRepository interface {
	Get(ctx context.Context, id int64) (*account.Account, error)
	// GetForUpdate loads the account and holds a write lock on it until the
	// surrounding unit of work ends.
	GetForUpdate(ctx context.Context, id int64) (*account.Account, error)
	// Create persists a new account and assigns its ID.
	Create(ctx context.Context, a *account.Account) error
}

// BalanceRepository defines the interface for balance data access operations.
type BalanceRepository interface {
	// Save inserts b when it has no ID yet (writing the new ID back) and
	// updates its amount otherwise.
	Save(ctx context.Context, b *account.Balance) error
	SaveAll(ctx context.Context, balances []*account.Balance) error
}
