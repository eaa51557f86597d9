package repository

import (
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
)

func mapAccountModelToDomain(m *BankAccount) *account.Account {
	a := &account.Account{
		ID:        m.ID,
		Name:      m.Name,
		Balances:  make([]*account.Balance, 0, len(m.Balances)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Balances {
		a.Balances = append(a.Balances, mapBalanceModelToDomain(&m.Balances[i]))
	}
	return a
}

func mapBalanceModelToDomain(m *Balance) *account.Balance {
	return &account.Balance{
		ID:        m.ID,
		AccountID: m.BankAccountID,
		Currency:  currency.Code(m.Currency),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func mapBalanceDomainToModel(b *account.Balance) *Balance {
	return &Balance{
		ID:            b.ID,
		BankAccountID: b.AccountID,
		Currency:      string(b.Currency),
		Amount:        b.Amount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
