package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRenewer is a mock of domain.Renewer.
type MockRenewer struct {
	mock.Mock
}

type MockRenewer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRenewer) EXPECT() *MockRenewer_Expecter {
	return &MockRenewer_Expecter{mock: &_m.Mock}
}

// Renew provides a mock function with given fields: ctx
func (_m *MockRenewer) Renew(ctx context.Context) bool {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Renew")
	}

	if rf, ok := ret.Get(0).(func(context.Context) bool); ok {
		return rf(ctx)
	}

	return ret.Bool(0)
}

type MockRenewer_Renew_Call struct {
	*mock.Call
}

func (_e *MockRenewer_Expecter) Renew(ctx any) *MockRenewer_Renew_Call {
	return &MockRenewer_Renew_Call{Call: _e.mock.On("Renew", ctx)}
}

func (_c *MockRenewer_Renew_Call) Return(ok bool) *MockRenewer_Renew_Call {
	_c.Call.Return(ok)
	return _c
}

func (_c *MockRenewer_Renew_Call) RunAndReturn(run func(context.Context) bool) *MockRenewer_Renew_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRenewer creates a new instance of MockRenewer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRenewer(t testingT) *MockRenewer {
	m := &MockRenewer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
