package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTokenSource is a mock of domain.TokenSource.
type MockTokenSource struct {
	mock.Mock
}

type MockTokenSource_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenSource) EXPECT() *MockTokenSource_Expecter {
	return &MockTokenSource_Expecter{mock: &_m.Mock}
}

// Token provides a mock function with given fields: ctx
func (_m *MockTokenSource) Token(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Token")
	}

	if rf, ok := ret.Get(0).(func(context.Context) (string, error)); ok {
		return rf(ctx)
	}

	return ret.String(0), ret.Error(1)
}

type MockTokenSource_Token_Call struct {
	*mock.Call
}

func (_e *MockTokenSource_Expecter) Token(ctx any) *MockTokenSource_Token_Call {
	return &MockTokenSource_Token_Call{Call: _e.mock.On("Token", ctx)}
}

func (_c *MockTokenSource_Token_Call) Return(token string, err error) *MockTokenSource_Token_Call {
	_c.Call.Return(token, err)
	return _c
}

// Check provides a mock function with given fields: ctx, renew
func (_m *MockTokenSource) Check(ctx context.Context, renew bool) bool {
	ret := _m.Called(ctx, renew)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	if rf, ok := ret.Get(0).(func(context.Context, bool) bool); ok {
		return rf(ctx, renew)
	}

	return ret.Bool(0)
}

type MockTokenSource_Check_Call struct {
	*mock.Call
}

func (_e *MockTokenSource_Expecter) Check(ctx any, renew any) *MockTokenSource_Check_Call {
	return &MockTokenSource_Check_Call{Call: _e.mock.On("Check", ctx, renew)}
}

func (_c *MockTokenSource_Check_Call) Return(ok bool) *MockTokenSource_Check_Call {
	_c.Call.Return(ok)
	return _c
}

// Lease provides a mock function with no fields
func (_m *MockTokenSource) Lease() (int64, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Lease")
	}

	if rf, ok := ret.Get(0).(func() (int64, error)); ok {
		return rf()
	}

	return ret.Get(0).(int64), ret.Error(1)
}

type MockTokenSource_Lease_Call struct {
	*mock.Call
}

func (_e *MockTokenSource_Expecter) Lease() *MockTokenSource_Lease_Call {
	return &MockTokenSource_Lease_Call{Call: _e.mock.On("Lease")}
}

func (_c *MockTokenSource_Lease_Call) Return(seconds int64, err error) *MockTokenSource_Lease_Call {
	_c.Call.Return(seconds, err)
	return _c
}

// IsLogged provides a mock function with no fields
func (_m *MockTokenSource) IsLogged() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for IsLogged")
	}

	return ret.Bool(0)
}

type MockTokenSource_IsLogged_Call struct {
	*mock.Call
}

func (_e *MockTokenSource_Expecter) IsLogged() *MockTokenSource_IsLogged_Call {
	return &MockTokenSource_IsLogged_Call{Call: _e.mock.On("IsLogged")}
}

func (_c *MockTokenSource_IsLogged_Call) Return(logged bool) *MockTokenSource_IsLogged_Call {
	_c.Call.Return(logged)
	return _c
}

// NewMockTokenSource creates a new instance of MockTokenSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenSource(t testingT) *MockTokenSource {
	m := &MockTokenSource{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
