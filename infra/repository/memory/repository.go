package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/shopspring/decimal"
)

type accountRow struct {
	id        int64
	name      string
	createdAt time.Time
	updatedAt time.Time
}

type balanceRow struct {
	id        int64
	accountID int64
	currency  currency.Code
	amount    decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

type balanceKey struct {
	accountID int64
	currency  currency.Code
}

// state holds rows by value so that clone is a plain map copy.
type state struct {
	accounts      map[int64]accountRow
	balances      map[int64]balanceRow
	byKey         map[balanceKey]int64
	nextAccountID int64
	nextBalanceID int64
}

func newState() *state {
	return &state{
		accounts: map[int64]accountRow{},
		balances: map[int64]balanceRow{},
		byKey:    map[balanceKey]int64{},
	}
}

func (s *state) clone() *state {
	c := &state{
		accounts:      make(map[int64]accountRow, len(s.accounts)),
		balances:      make(map[int64]balanceRow, len(s.balances)),
		byKey:         make(map[balanceKey]int64, len(s.byKey)),
		nextAccountID: s.nextAccountID,
		nextBalanceID: s.nextBalanceID,
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, v := range s.byKey {
		c.byKey[k] = v
	}
	return c
}

type accountRepository struct {
	state *state
	now   func() time.Time
}

func (r *accountRepository) Get(_ context.Context, id int64) (*account.Account, error) {
	row, ok := r.state.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a := &account.Account{
		ID:        row.id,
		Name:      row.name,
		Balances:  []*account.Balance{},
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}
	for _, b := range r.state.balances {
		if b.accountID != id {
			continue
		}
		a.Balances = append(a.Balances, &account.Balance{
			ID:        b.id,
			AccountID: b.accountID,
			Currency:  b.currency,
			Amount:    b.amount,
			CreatedAt: b.createdAt,
			UpdatedAt: b.updatedAt,
		})
	}
	sort.Slice(a.Balances, func(i, j int) bool { return a.Balances[i].ID < a.Balances[j].ID })
	return a, nil
}

// GetForUpdate needs no extra locking: the enclosing Do holds the store mutex.
func (r *accountRepository) GetForUpdate(ctx context.Context, id int64) (*account.Account, error) {
	return r.Get(ctx, id)
}

func (r *accountRepository) Create(_ context.Context, a *account.Account) error {
	now := r.now()
	r.state.nextAccountID++
	row := accountRow{
		id:        r.state.nextAccountID,
		name:      a.Name,
		createdAt: now,
		updatedAt: now,
	}
	r.state.accounts[row.id] = row
	a.ID, a.CreatedAt, a.UpdatedAt = row.id, now, now
	return nil
}

type balanceRepository struct {
	state *state
	now   func() time.Time
}

func (r *balanceRepository) Save(_ context.Context, b *account.Balance) error {
	now := r.now()
	if b.ID == 0 {
		if _, ok := r.state.accounts[b.AccountID]; !ok {
			return fmt.Errorf("balance for account %d: %w", b.AccountID, domain.ErrNotFound)
		}
		key := balanceKey{accountID: b.AccountID, currency: b.Currency}
		if _, exists := r.state.byKey[key]; exists {
			return fmt.Errorf("balance %s for account %d: %w", b.Currency, b.AccountID, domain.ErrAlreadyExists)
		}
		r.state.nextBalanceID++
		row := balanceRow{
			id:        r.state.nextBalanceID,
			accountID: b.AccountID,
			currency:  b.Currency,
			amount:    b.Amount,
			createdAt: now,
			updatedAt: now,
		}
		r.state.balances[row.id] = row
		r.state.byKey[key] = row.id
		b.ID, b.CreatedAt, b.UpdatedAt = row.id, now, now
		return nil
	}

	row, ok := r.state.balances[b.ID]
	if !ok {
		return fmt.Errorf("balance %d: %w", b.ID, domain.ErrNotFound)
	}
	row.amount = b.Amount
	row.updatedAt = now
	r.state.balances[b.ID] = row
	b.UpdatedAt = now
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
