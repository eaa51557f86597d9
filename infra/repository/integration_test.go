package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/bankaccount/infra"
	infrarepo "github.com/amirasaad/bankaccount/infra/repository"
	"github.com/amirasaad/bankaccount/internal/fixtures/mocks"
	"github.com/amirasaad/bankaccount/pkg/commands"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/repository"
	accountsvc "github.com/amirasaad/bankaccount/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type PostgresTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	uow       *infrarepo.UoW
	svc       *accountsvc.Service
}

func TestPostgresTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers suite in short mode")
	}
	suite.Run(t, new(PostgresTestSuite))
}

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "migrations")
}

func (s *PostgresTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("bankaccount"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = infra.NewDBConnection(&config.DB{
		Url:             dsn,
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Minute,
	}, "test")
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(infra.RunMigrations(s.db, migrationsDir(), logger))
	// second run is a no-op
	s.Require().NoError(infra.RunMigrations(s.db, migrationsDir(), logger))

	s.uow = infrarepo.NewUoW(s.db)
	s.svc = accountsvc.New(s.uow, currency.DefaultRates(), mocks.StaticStatus(200, "OK"), logger)
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *PostgresTestSuite) balanceOf(id int64, code currency.Code) decimal.Decimal {
	balances, err := s.svc.GetBalances(context.Background(), id)
	s.Require().NoError(err)
	for _, b := range balances {
		if b.Currency == code {
			return b.Amount
		}
	}
	s.FailNow("balance not found", "%s on account %d", code, id)
	return decimal.Zero
}

func (s *PostgresTestSuite) TestLedgerFlow() {
	ctx := context.Background()
	a, err := s.svc.CreateAccount(ctx, "Jane")
	s.Require().NoError(err)

	balances, err := s.svc.GetBalances(ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(balances)

	s.Require().NoError(s.svc.Deposit(ctx, commands.Deposit{AccountID: a.ID, Amount: decimal.RequireFromString("100.00"), Currency: currency.EUR}))
	s.Require().NoError(s.svc.Debit(ctx, commands.Debit{AccountID: a.ID, Amount: decimal.RequireFromString("30.00"), Currency: currency.EUR}))
	s.True(s.balanceOf(a.ID, currency.EUR).Equal(decimal.NewFromInt(70)))

	s.Require().NoError(s.svc.Exchange(ctx, commands.Exchange{AccountID: a.ID, From: currency.EUR, To: currency.USD, Amount: decimal.RequireFromString("8.5")}))
	s.True(s.balanceOf(a.ID, currency.EUR).Equal(decimal.RequireFromString("61.5")))
	s.True(s.balanceOf(a.ID, currency.USD).Equal(decimal.NewFromInt(10)))

	err = s.svc.Debit(ctx, commands.Debit{AccountID: a.ID, Amount: decimal.NewFromInt(1000), Currency: currency.USD})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
	s.True(s.balanceOf(a.ID, currency.USD).Equal(decimal.NewFromInt(10)))

	_, err = s.svc.GetBalances(ctx, a.ID+1_000_000)
	s.ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *PostgresTestSuite) TestDuplicateBalanceIsRejected() {
	ctx := context.Background()
	a, err := s.svc.CreateAccount(ctx, "Dup")
	s.Require().NoError(err)

	err = s.uow.Do(ctx, func(tx repository.UnitOfWork) error {
		balances, err := tx.BalanceRepository()
		if err != nil {
			return err
		}
		return balances.SaveAll(ctx, []*account.Balance{
			{AccountID: a.ID, Currency: currency.SEK, Amount: decimal.NewFromInt(1)},
			{AccountID: a.ID, Currency: currency.SEK, Amount: decimal.NewFromInt(2)},
		})
	})
	s.ErrorIs(err, domain.ErrAlreadyExists)

	balances, err := s.svc.GetBalances(ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(balances, "rolled back")
}

func (s *PostgresTestSuite) TestConcurrentDebitsNeverOverdraw() {
	ctx := context.Background()
	a, err := s.svc.CreateAccount(ctx, "Race")
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Deposit(ctx, commands.Deposit{AccountID: a.ID, Amount: decimal.NewFromInt(100), Currency: currency.GBP}))

	const workers = 15
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		refused   int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.svc.Debit(ctx, commands.Debit{AccountID: a.ID, Amount: decimal.NewFromInt(10), Currency: currency.GBP})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrInsufficientFunds):
				refused++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}()
	}
	wg.Wait()

	s.Equal(10, succeeded)
	s.Equal(workers-10, refused)
	s.True(s.balanceOf(a.ID, currency.GBP).IsZero())
}
