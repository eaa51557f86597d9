package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/domain"
	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var (
	accountColumns = []string{"id", "name", "created_at", "updated_at"}
	balanceColumns = []string{"id", "bank_account_id", "currency", "amount", "created_at", "updated_at"}
)

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	a, err := account.New("Jane")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bank_accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, int64(42), a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bank_accounts"`).WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	assert.Error(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "bank_accounts" WHERE "bank_accounts"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(7, "Jane", now, now))
	mock.ExpectQuery(`SELECT \* FROM "balances" WHERE "balances"."bank_account_id" = \$1`).
		WillReturnRows(sqlmock.NewRows(balanceColumns).
			AddRow(1, 7, "EUR", "70.0000", now, now).
			AddRow(2, 7, "USD", "0.8500", now, now))

	a, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "Jane", a.Name)
	require.Len(t, a.Balances, 2)
	assert.Equal(t, currency.EUR, a.Balances[0].Currency)
	assert.Equal(t, int64(7), a.Balances[0].AccountID)
	assert.True(t, a.Balances[0].Amount.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, currency.USD, a.Balances[1].Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "bank_accounts"`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "bank_accounts" WHERE "bank_accounts"."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(3, "Locked", now, now))
	mock.ExpectQuery(`SELECT \* FROM "balances"`).
		WillReturnRows(sqlmock.NewRows(balanceColumns))

	a, err := repo.GetForUpdate(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, a.Balances)
	assert.NotNil(t, a.Balances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_SaveInsertsNewBalance(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBalanceRepository(db)
	b := &account.Balance{AccountID: 7, Currency: currency.GBP, Amount: decimal.RequireFromString("1.1500")}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "balances" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), b))
	assert.Equal(t, int64(11), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_SaveUpdatesExistingBalance(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBalanceRepository(db)
	b := &account.Balance{ID: 11, AccountID: 7, Currency: currency.GBP, Amount: decimal.RequireFromString("2.0000")}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "balances" SET (.+) WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), b))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "balances" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, repo.Save(context.Background(), b), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoCommitsAndSharesTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bank_accounts" .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(1, "Jane", now, now))
	mock.ExpectQuery(`SELECT \* FROM "balances"`).
		WillReturnRows(sqlmock.NewRows(balanceColumns).AddRow(5, 1, "EUR", "100.0000", now, now))
	mock.ExpectExec(`UPDATE "balances" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		accounts, err := tx.AccountRepository()
		require.NoError(t, err)
		balances, err := tx.BalanceRepository()
		require.NoError(t, err)

		a, err := accounts.GetForUpdate(context.Background(), 1)
		if err != nil {
			return err
		}
		if err := a.Balances[0].Debit(decimal.NewFromInt(30)); err != nil {
			return err
		}
		return balances.Save(context.Background(), a.Balances[0])
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepository(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	repoAny, err := uow.GetRepository(repository.AccountRepositoryType)
	require.NoError(t, err)
	_, ok := repoAny.(*accountRepository)
	assert.True(t, ok)

	repoAny, err = uow.GetRepository(repository.BalanceRepositoryType)
	require.NoError(t, err)
	_, ok = repoAny.(*balanceRepository)
	assert.True(t, ok)

	_, err = uow.GetRepository(nil)
	assert.Error(t, err)
}
