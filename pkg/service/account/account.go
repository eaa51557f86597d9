// Package account provides the ledger engine: account creation, deposits,
// debits, balance queries and currency exchange between balances of one
// account.
//
// Every operation runs inside a single unit of work. Mutations load the
// account with AccountRepository.GetForUpdate, so two operations on the same
// account never interleave between the funds check and the write.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankaccount/pkg/commands"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/dto"
	"github.com/amirasaad/bankaccount/pkg/money"
	"github.com/amirasaad/bankaccount/pkg/provider"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service implements the ledger operations.
type Service struct {
	uow      repository.UnitOfWork
	rates    currency.RateTable
	external provider.ExternalSystem
	logger   *slog.Logger
}

// New creates a new Service with the provided dependencies.
func New(
	uow repository.UnitOfWork,
	rates currency.RateTable,
	external provider.ExternalSystem,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:      uow,
		rates:    rates,
		external: external,
		logger:   logger,
	}
}

// Rates exposes the rate table the service converts with.
func (s *Service) Rates() currency.RateTable {
	return s.rates
}

// CreateAccount persists a new account with no balances.
func (s *Service) CreateAccount(ctx context.Context, name string) (a *account.Account, err error) {
	logger := s.logger.With("name", name)
	logger.Info("CreateAccount started")

	a, err = account.New(name)
	if err != nil {
		logger.Error("CreateAccount failed: domain error", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		logger.Error("CreateAccount failed: transaction error", "error", err)
		return nil, err
	}
	logger.Info("CreateAccount successful", "accountID", a.ID)
	return a, nil
}

// Deposit adds money to the balance in cmd.Currency, creating that balance
// on first use.
func (s *Service) Deposit(ctx context.Context, cmd commands.Deposit) error {
	logger := s.logger.With("accountID", cmd.AccountID, "amount", cmd.Amount, "currency", cmd.Currency)
	logger.Info("Deposit started")

	if err := s.validate(cmd.Amount, cmd.Currency); err != nil {
		logger.Error("Deposit failed: validation error", "error", err)
		return err
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.lockAccount(ctx, uow, cmd.AccountID)
		if err != nil {
			return err
		}
		bal := a.Index().GetOrCreate(cmd.Currency)
		bal.Credit(cmd.Amount)

		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		return balances.Save(ctx, bal)
	})
	if err != nil {
		logger.Error("Deposit failed", "error", err)
		return err
	}
	logger.Info("Deposit successful")
	return nil
}

// Debit removes money from an existing balance. The external system is
// consulted after the funds check and before anything is written; a refusal
// leaves the balance untouched.
func (s *Service) Debit(ctx context.Context, cmd commands.Debit) error {
	logger := s.logger.With("accountID", cmd.AccountID, "amount", cmd.Amount, "currency", cmd.Currency)
	logger.Info("Debit started")

	if err := s.validate(cmd.Amount, cmd.Currency); err != nil {
		logger.Error("Debit failed: validation error", "error", err)
		return err
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.lockAccount(ctx, uow, cmd.AccountID)
		if err != nil {
			return err
		}
		bal, ok := a.Index().Find(cmd.Currency)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, cmd.Currency)
		}
		if !bal.Covers(cmd.Amount) {
			return fmt.Errorf("%w: %s balance %s is below %s",
				domain.ErrInsufficientFunds, cmd.Currency, money.Format(bal.Amount), cmd.Amount.String())
		}
		if err := s.checkExternalSystem(ctx, logger); err != nil {
			return err
		}
		if err := bal.Debit(cmd.Amount); err != nil {
			return err
		}

		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		return balances.Save(ctx, bal)
	})
	if err != nil {
		logger.Error("Debit failed", "error", err)
		return err
	}
	logger.Info("Debit successful")
	return nil
}

// GetBalances lists the account's balances in creation order. An account
// with no balances yields an empty, non-nil slice.
func (s *Service) GetBalances(ctx context.Context, accountID int64) (result []dto.BalanceRead, err error) {
	logger := s.logger.With("accountID", accountID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err := repo.Get(ctx, accountID)
		if err != nil {
			return accountError(err, accountID)
		}
		result = make([]dto.BalanceRead, 0, len(a.Balances))
		for _, b := range a.Balances {
			result = append(result, dto.BalanceRead{Amount: b.Amount, Currency: b.Currency})
		}
		return nil
	})
	if err != nil {
		logger.Error("GetBalances failed", "error", err)
		return nil, err
	}
	return result, nil
}

// Exchange converts cmd.Amount of cmd.From into cmd.To within one account.
// Exchanging a currency into itself is a no-op that touches no store.
func (s *Service) Exchange(ctx context.Context, cmd commands.Exchange) error {
	logger := s.logger.With(
		"accountID", cmd.AccountID,
		"amount", cmd.Amount,
		"from", cmd.From,
		"to", cmd.To,
	)
	logger.Info("Exchange started")

	if err := money.RequirePositive(cmd.Amount); err != nil {
		logger.Error("Exchange failed: validation error", "error", err)
		return err
	}
	if cmd.From == cmd.To {
		logger.Info("Exchange skipped: same currency")
		return nil
	}
	for _, code := range []currency.Code{cmd.From, cmd.To} {
		if !s.rates.Supports(code) {
			err := fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, code)
			logger.Error("Exchange failed: validation error", "error", err)
			return err
		}
	}

	var credited string
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.lockAccount(ctx, uow, cmd.AccountID)
		if err != nil {
			return err
		}
		idx := a.Index()
		from, ok := idx.Find(cmd.From)
		if !ok {
			return fmt.Errorf("%w for exchange: no %s balance", domain.ErrInsufficientFunds, cmd.From)
		}
		to := idx.GetOrCreate(cmd.To)
		if !from.Covers(cmd.Amount) {
			return fmt.Errorf("%w for exchange: %s balance %s is below %s",
				domain.ErrInsufficientFunds, cmd.From, money.Format(from.Amount), cmd.Amount.String())
		}

		converted, err := s.rates.Convert(cmd.Amount, cmd.From, cmd.To)
		if err != nil {
			return err
		}
		if err := from.Debit(cmd.Amount); err != nil {
			return err
		}
		to.Credit(converted)
		credited = money.Format(converted)

		balances, err := uow.BalanceRepository()
		if err != nil {
			return err
		}
		return balances.SaveAll(ctx, []*account.Balance{from, to})
	})
	if err != nil {
		logger.Error("Exchange failed", "error", err)
		return err
	}
	logger.Info("Exchange successful", "credited", credited)
	return nil
}

func (s *Service) validate(amount decimal.Decimal, code currency.Code) error {
	if err := money.RequirePositive(amount); err != nil {
		return err
	}
	if !s.rates.Supports(code) {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedCurrency, code)
	}
	return nil
}

func (s *Service) lockAccount(ctx context.Context, uow repository.UnitOfWork, id int64) (*account.Account, error) {
	repo, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	a, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, accountError(err, id)
	}
	return a, nil
}

// checkExternalSystem turns anything but a 200 verdict into an
// *domain.ExternalSystemError.
func (s *Service) checkExternalSystem(ctx context.Context, logger *slog.Logger) error {
	status, err := s.external.Status(ctx)
	if err != nil {
		logger.Warn("External system check failed", "error", err)
		return &domain.ExternalSystemError{Description: "external system unreachable", Err: err}
	}
	if status == nil {
		logger.Warn("External system returned no status")
		return &domain.ExternalSystemError{Description: "empty response from external system"}
	}
	if !status.OK() {
		logger.Warn("External system refused debit", "code", status.Code, "description", status.Description)
		return &domain.ExternalSystemError{Code: status.Code, Description: status.Description}
	}
	return nil
}

func accountError(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
	}
	return err
}
