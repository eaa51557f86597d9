package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs the given function in a transaction boundary, providing a UnitOfWork for repository access.
// GetRepository provides type-safe access to repositories using the transaction session.
// Example usage:
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*BalanceRepository)(nil)).Elem())
//	repo := repoAny.(BalanceRepository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, every write made through the
	// provided UnitOfWork is discarded.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the current transaction.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (AccountRepository, error)
	BalanceRepository() (BalanceRepository, error)
}

// AccountRepositoryType and BalanceRepositoryType are the registry keys
// accepted by GetRepository.
var (
	AccountRepositoryType = reflect.TypeOf((*AccountRepository)(nil)).Elem()
	BalanceRepositoryType = reflect.TypeOf((*BalanceRepository)(nil)).Elem()
)
