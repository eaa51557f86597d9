package repository

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new gorm-backed repository.AccountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate issues SELECT ... FOR UPDATE on the bank_accounts row; the
// lock is released when the enclosing transaction ends.
func (r *accountRepository) GetForUpdate(ctx context.Context, id int64) (*account.Account, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := BankAccount{Name: a.Name}
	err := WrapError(func() error {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
	})
	if err != nil {
		return err
	}
	a.ID, a.CreatedAt, a.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *accountRepository) load(tx *gorm.DB, id int64) (*account.Account, error) {
	var m BankAccount
	err := WrapError(func() error {
		return tx.
			Preload("Balances", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
			First(&m, id).Error
	})
	if err != nil {
		return nil, err
	}
	return mapAccountModelToDomain(&m), nil
}
