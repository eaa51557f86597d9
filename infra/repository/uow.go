package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/bankaccount/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained from the UoW passed to Do share its transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repository.AccountRepositoryType: func(db *gorm.DB) any { return NewAccountRepository(db) },
			repository.BalanceRepositoryType: func(db *gorm.DB) any { return NewBalanceRepository(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Calling Do on a UoW that is already inside a transaction joins it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository returns a repository bound to the transaction session, or
// to the plain connection when called outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repo, err := u.GetRepository(repository.AccountRepositoryType)
	if err != nil {
		return nil, err
	}
	return repo.(repository.AccountRepository), nil
}

func (u *UoW) BalanceRepository() (repository.BalanceRepository, error) {
	repo, err := u.GetRepository(repository.BalanceRepositoryType)
	if err != nil {
		return nil, err
	}
	return repo.(repository.BalanceRepository), nil
}
