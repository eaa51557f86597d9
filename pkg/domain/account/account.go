// Package account defines the Account aggregate and its per-currency balances.
//
// Invariants:
//   - An account holds at most one Balance per currency.
//   - Every amount written by Credit or Debit is rounded to money.Scale.
//   - Debit never drives a balance negative.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/shopspring/decimal"
)

// Account is the aggregate root owning a set of balances.
type Account struct {
	ID        int64
	Name      string
	Balances  []*Balance
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance is the amount an account holds in one currency.
type Balance struct {
	ID        int64
	AccountID int64
	Currency  currency.Code
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns an unsaved account with no balances.
func New(name string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: account name must not be blank", domain.ErrBadRequest)
	}
	return &Account{Name: name, Balances: []*Balance{}}, nil
}

// Covers reports whether the balance holds at least amount.
func (b *Balance) Covers(amount decimal.Decimal) bool {
	return b.Amount.GreaterThanOrEqual(amount)
}

// Credit adds amount to the balance.
func (b *Balance) Credit(amount decimal.Decimal) {
	b.Amount = money.Round(b.Amount.Add(amount))
}

// Debit subtracts amount, refusing with domain.ErrInsufficientFunds when
// the balance does not cover it. The balance is unchanged on error.
func (b *Balance) Debit(amount decimal.Decimal) error {
	if !b.Covers(amount) {
		return fmt.Errorf("%w: %s balance %s is below %s",
			domain.ErrInsufficientFunds, b.Currency, money.Format(b.Amount), amount.String())
	}
	b.Amount = money.Round(b.Amount.Sub(amount))
	return nil
}

// BalanceIndex is a currency-keyed view over an account's balances, built
// once per operation. GetOrCreate is the only place a Balance comes into
// existence, which keeps the one-balance-per-currency rule in one spot.
type BalanceIndex struct {
	account *Account
	byCode  map[currency.Code]*Balance
}

// Index builds a BalanceIndex over a.
func (a *Account) Index() *BalanceIndex {
	byCode := make(map[currency.Code]*Balance, len(a.Balances))
	for _, b := range a.Balances {
		byCode[b.Currency] = b
	}
	return &BalanceIndex{account: a, byCode: byCode}
}

// Find returns the balance for code, if any.
func (i *BalanceIndex) Find(code currency.Code) (*Balance, bool) {
	b, ok := i.byCode[code]
	return b, ok
}

// GetOrCreate returns the balance for code, attaching a zero balance to the
// account first when none exists.
func (i *BalanceIndex) GetOrCreate(code currency.Code) *Balance {
	if b, ok := i.byCode[code]; ok {
		return b
	}
	b := &Balance{
		AccountID: i.account.ID,
		Currency:  code,
		Amount:    decimal.Zero,
	}
	i.account.Balances = append(i.account.Balances, b)
	i.byCode[code] = b
	return b
}
