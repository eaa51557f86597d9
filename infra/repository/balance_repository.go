package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"gorm.io/gorm"
)

type balanceRepository struct {
	db *gorm.DB
}

// NewBalanceRepository creates a new gorm-backed repository.BalanceRepository.
func NewBalanceRepository(db *gorm.DB) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) Save(ctx context.Context, b *account.Balance) error {
	if b.ID == 0 {
		m := mapBalanceDomainToModel(b)
		err := WrapError(func() error {
			return r.db.WithContext(ctx).Create(m).Error
		})
		if err != nil {
			return err
		}
		b.ID, b.CreatedAt, b.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&Balance{}).
		Where("id = ?", b.ID).
		Update("amount", b.Amount)
	if err := MapGormErrorToDomain(res.Error); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("balance %d: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *balanceRepository) SaveAll(ctx context.Context, balances []*account.Balance) error {
	for _, b := range balances {
		if err := r.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
