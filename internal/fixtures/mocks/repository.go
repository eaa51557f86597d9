// Package mocks holds testify mocks for the repository and provider
// interfaces, shaped after mockery's expecter API.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/bankaccount/pkg/domain/account"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock type for the repository.UnitOfWork type
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork registers AssertExpectations on cleanup.
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &m.Mock}
}

// Do provides a mock function with given fields: ctx, fn
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

type MockUnitOfWork_Do_Call struct {
	*mock.Call
}

func (e *MockUnitOfWork_Expecter) Do(ctx any, fn any) *MockUnitOfWork_Do_Call {
	return &MockUnitOfWork_Do_Call{Call: e.mock.On("Do", ctx, fn)}
}

func (c *MockUnitOfWork_Do_Call) Return(err error) *MockUnitOfWork_Do_Call {
	c.Call.Return(err)
	return c
}

// RunAndReturn replaces the canned result with run.
func (c *MockUnitOfWork_Do_Call) RunAndReturn(
	run func(context.Context, func(repository.UnitOfWork) error) error,
) *MockUnitOfWork_Do_Call {
	c.Call.Return(run)
	return c
}

// GetRepository provides a mock function with given fields: repoType
func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	ret := m.Called(repoType)
	return ret.Get(0), ret.Error(1)
}

// AccountRepository provides a mock function with no fields
func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.AccountRepository)
	return repo, ret.Error(1)
}

type MockUnitOfWork_AccountRepository_Call struct {
	*mock.Call
}

func (e *MockUnitOfWork_Expecter) AccountRepository() *MockUnitOfWork_AccountRepository_Call {
	return &MockUnitOfWork_AccountRepository_Call{Call: e.mock.On("AccountRepository")}
}

func (c *MockUnitOfWork_AccountRepository_Call) Return(
	repo repository.AccountRepository,
	err error,
) *MockUnitOfWork_AccountRepository_Call {
	c.Call.Return(repo, err)
	return c
}

// BalanceRepository provides a mock function with no fields
func (m *MockUnitOfWork) BalanceRepository() (repository.BalanceRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.BalanceRepository)
	return repo, ret.Error(1)
}

type MockUnitOfWork_BalanceRepository_Call struct {
	*mock.Call
}

func (e *MockUnitOfWork_Expecter) BalanceRepository() *MockUnitOfWork_BalanceRepository_Call {
	return &MockUnitOfWork_BalanceRepository_Call{Call: e.mock.On("BalanceRepository")}
}

func (c *MockUnitOfWork_BalanceRepository_Call) Return(
	repo repository.BalanceRepository,
	err error,
) *MockUnitOfWork_BalanceRepository_Call {
	c.Call.Return(repo, err)
	return c
}

// MockAccountRepository is a mock type for the repository.AccountRepository type
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository registers AssertExpectations on cleanup.
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockAccountRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockAccountRepository) EXPECT() *MockAccountRepository_Expecter {
	return &MockAccountRepository_Expecter{mock: &m.Mock}
}

func (m *MockAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	ret := m.Called(ctx, id)
	a, _ := ret.Get(0).(*account.Account)
	return a, ret.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, id int64) (*account.Account, error) {
	ret := m.Called(ctx, id)
	a, _ := ret.Get(0).(*account.Account)
	return a, ret.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	ret := m.Called(ctx, a)
	if rf, ok := ret.Get(0).(func(context.Context, *account.Account) error); ok {
		return rf(ctx, a)
	}
	return ret.Error(0)
}

type MockAccountRepository_Get_Call struct {
	*mock.Call
}

func (e *MockAccountRepository_Expecter) Get(ctx any, id any) *MockAccountRepository_Get_Call {
	return &MockAccountRepository_Get_Call{Call: e.mock.On("Get", ctx, id)}
}

func (e *MockAccountRepository_Expecter) GetForUpdate(ctx any, id any) *MockAccountRepository_Get_Call {
	return &MockAccountRepository_Get_Call{Call: e.mock.On("GetForUpdate", ctx, id)}
}

func (c *MockAccountRepository_Get_Call) Return(a *account.Account, err error) *MockAccountRepository_Get_Call {
	c.Call.Return(a, err)
	return c
}

type MockAccountRepository_Create_Call struct {
	*mock.Call
}

func (e *MockAccountRepository_Expecter) Create(ctx any, a any) *MockAccountRepository_Create_Call {
	return &MockAccountRepository_Create_Call{Call: e.mock.On("Create", ctx, a)}
}

func (c *MockAccountRepository_Create_Call) Return(err error) *MockAccountRepository_Create_Call {
	c.Call.Return(err)
	return c
}

func (c *MockAccountRepository_Create_Call) RunAndReturn(
	run func(context.Context, *account.Account) error,
) *MockAccountRepository_Create_Call {
	c.Call.Return(run)
	return c
}

// MockBalanceRepository is a mock type for the repository.BalanceRepository type
type MockBalanceRepository struct {
	mock.Mock
}

// NewMockBalanceRepository registers AssertExpectations on cleanup.
func NewMockBalanceRepository(t testingT) *MockBalanceRepository {
	m := &MockBalanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockBalanceRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockBalanceRepository) EXPECT() *MockBalanceRepository_Expecter {
	return &MockBalanceRepository_Expecter{mock: &m.Mock}
}

func (m *MockBalanceRepository) Save(ctx context.Context, b *account.Balance) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBalanceRepository) SaveAll(ctx context.Context, balances []*account.Balance) error {
	return m.Called(ctx, balances).Error(0)
}

type MockBalanceRepository_Save_Call struct {
	*mock.Call
}

func (e *MockBalanceRepository_Expecter) Save(ctx any, b any) *MockBalanceRepository_Save_Call {
	return &MockBalanceRepository_Save_Call{Call: e.mock.On("Save", ctx, b)}
}

func (e *MockBalanceRepository_Expecter) SaveAll(ctx any, balances any) *MockBalanceRepository_Save_Call {
	return &MockBalanceRepository_Save_Call{Call: e.mock.On("SaveAll", ctx, balances)}
}

func (c *MockBalanceRepository_Save_Call) Return(err error) *MockBalanceRepository_Save_Call {
	c.Call.Return(err)
	return c
}
