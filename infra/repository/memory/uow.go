// Package memory is an in-process implementation of repository.UnitOfWork.
//
// A unit of work holds the store mutex for its whole duration and writes to a
// private copy of the data, which replaces the committed state only when the
// work function returns nil.
package memory

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/amirasaad/bankaccount/pkg/repository"
)

// ErrNoTransaction is returned when repositories are requested outside Do.
var ErrNoTransaction = errors.New("memory: repositories are only available inside Do")

// UoW is the root unit of work; it owns the committed state.
type UoW struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

// NewUoW returns an empty store.
func NewUoW() *UoW {
	return &UoW{state: newState(), now: time.Now}
}

// Do runs fn against a copy of the committed state and swaps the copy in
// when fn succeeds.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := u.state.clone()
	if err := fn(newTx(work, u.now)); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *UoW) GetRepository(reflect.Type) (any, error) {
	return nil, ErrNoTransaction
}

func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return nil, ErrNoTransaction
}

func (u *UoW) BalanceRepository() (repository.BalanceRepository, error) {
	return nil, ErrNoTransaction
}

// tx is the UnitOfWork handed to the work function.
type tx struct {
	repoRegistry map[reflect.Type]func() any
}

func newTx(s *state, now func() time.Time) *tx {
	return &tx{
		repoRegistry: map[reflect.Type]func() any{
			repository.AccountRepositoryType: func() any { return &accountRepository{state: s, now: now} },
			repository.BalanceRepositoryType: func() any { return &balanceRepository{state: s, now: now} },
		},
	}
}

// Do joins the enclosing unit of work.
func (t *tx) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *tx) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := t.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(), nil
}

func (t *tx) AccountRepository() (repository.AccountRepository, error) {
	repo, err := t.GetRepository(repository.AccountRepositoryType)
	if err != nil {
		return nil, err
	}
	return repo.(repository.AccountRepository), nil
}

func (t *tx) BalanceRepository() (repository.BalanceRepository, error) {
	repo, err := t.GetRepository(repository.BalanceRepositoryType)
	if err != nil {
		return nil, err
	}
	return repo.(repository.BalanceRepository), nil
}
