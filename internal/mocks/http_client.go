package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ppauth/internal/domain"
)

// MockHTTPClient is a mock of domain.HTTPClient.
type MockHTTPClient struct {
	mock.Mock
}

type MockHTTPClient_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHTTPClient) EXPECT() *MockHTTPClient_Expecter {
	return &MockHTTPClient_Expecter{mock: &_m.Mock}
}

// Do provides a mock function with given fields: ctx, req
func (_m *MockHTTPClient) Do(ctx context.Context, req domain.HTTPRequest) (*domain.HTTPResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Do")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.HTTPRequest) (*domain.HTTPResponse, error)); ok {
		return rf(ctx, req)
	}

	var r0 *domain.HTTPResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.HTTPResponse)
	}

	return r0, ret.Error(1)
}

type MockHTTPClient_Do_Call struct {
	*mock.Call
}

func (_e *MockHTTPClient_Expecter) Do(ctx any, req any) *MockHTTPClient_Do_Call {
	return &MockHTTPClient_Do_Call{Call: _e.mock.On("Do", ctx, req)}
}

func (_c *MockHTTPClient_Do_Call) Run(run func(ctx context.Context, req domain.HTTPRequest)) *MockHTTPClient_Do_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.HTTPRequest))
	})
	return _c
}

func (_c *MockHTTPClient_Do_Call) Return(resp *domain.HTTPResponse, err error) *MockHTTPClient_Do_Call {
	_c.Call.Return(resp, err)
	return _c
}

func (_c *MockHTTPClient_Do_Call) RunAndReturn(
	run func(context.Context, domain.HTTPRequest) (*domain.HTTPResponse, error),
) *MockHTTPClient_Do_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHTTPClient creates a new instance of MockHTTPClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHTTPClient(t testingT) *MockHTTPClient {
	m := &MockHTTPClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
