package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ppauth/internal/domain"
)

// MockAuthenticator is a mock of domain.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

type MockAuthenticator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthenticator) EXPECT() *MockAuthenticator_Expecter {
	return &MockAuthenticator_Expecter{mock: &_m.Mock}
}

// Authenticate provides a mock function with given fields: ctx, req
func (_m *MockAuthenticator) Authenticate(ctx context.Context, req domain.AuthRequest) (domain.Session, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.AuthRequest) (domain.Session, error)); ok {
		return rf(ctx, req)
	}

	return ret.Get(0).(domain.Session), ret.Error(1)
}

type MockAuthenticator_Authenticate_Call struct {
	*mock.Call
}

func (_e *MockAuthenticator_Expecter) Authenticate(ctx any, req any) *MockAuthenticator_Authenticate_Call {
	return &MockAuthenticator_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, req)}
}

func (_c *MockAuthenticator_Authenticate_Call) Run(
	run func(ctx context.Context, req domain.AuthRequest),
) *MockAuthenticator_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.AuthRequest))
	})
	return _c
}

func (_c *MockAuthenticator_Authenticate_Call) Return(
	session domain.Session,
	err error,
) *MockAuthenticator_Authenticate_Call {
	_c.Call.Return(session, err)
	return _c
}

func (_c *MockAuthenticator_Authenticate_Call) RunAndReturn(
	run func(context.Context, domain.AuthRequest) (domain.Session, error),
) *MockAuthenticator_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthenticator creates a new instance of MockAuthenticator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthenticator(t testingT) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
