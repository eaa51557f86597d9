package mocks

import (
	"context"

	"github.com/amirasaad/bankaccount/pkg/provider"
	"github.com/stretchr/testify/mock"
)

// MockExternalSystem is a mock type for the provider.ExternalSystem type
type MockExternalSystem struct {
	mock.Mock
}

// NewMockExternalSystem registers AssertExpectations on cleanup.
func NewMockExternalSystem(t testingT) *MockExternalSystem {
	m := &MockExternalSystem{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockExternalSystem_Expecter struct {
	mock *mock.Mock
}

func (m *MockExternalSystem) EXPECT() *MockExternalSystem_Expecter {
	return &MockExternalSystem_Expecter{mock: &m.Mock}
}

func (m *MockExternalSystem) Status(ctx context.Context) (*provider.ExternalStatus, error) {
	ret := m.Called(ctx)
	status, _ := ret.Get(0).(*provider.ExternalStatus)
	return status, ret.Error(1)
}

type MockExternalSystem_Status_Call struct {
	*mock.Call
}

func (e *MockExternalSystem_Expecter) Status(ctx any) *MockExternalSystem_Status_Call {
	return &MockExternalSystem_Status_Call{Call: e.mock.On("Status", ctx)}
}

func (c *MockExternalSystem_Status_Call) Return(
	status *provider.ExternalStatus,
	err error,
) *MockExternalSystem_Status_Call {
	c.Call.Return(status, err)
	return c
}
