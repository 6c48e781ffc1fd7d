package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPasswordReader is a mock of domain.PasswordReader.
type MockPasswordReader struct {
	mock.Mock
}

type MockPasswordReader_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordReader) EXPECT() *MockPasswordReader_Expecter {
	return &MockPasswordReader_Expecter{mock: &_m.Mock}
}

// ReadPassword provides a mock function with given fields: ctx, prompt
func (_m *MockPasswordReader) ReadPassword(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	if len(ret) == 0 {
		panic("no return value specified for ReadPassword")
	}

	return ret.String(0), ret.Error(1)
}

type MockPasswordReader_ReadPassword_Call struct {
	*mock.Call
}

func (_e *MockPasswordReader_Expecter) ReadPassword(ctx any, prompt any) *MockPasswordReader_ReadPassword_Call {
	return &MockPasswordReader_ReadPassword_Call{Call: _e.mock.On("ReadPassword", ctx, prompt)}
}

func (_c *MockPasswordReader_ReadPassword_Call) Return(password string, err error) *MockPasswordReader_ReadPassword_Call {
	_c.Call.Return(password, err)
	return _c
}

// IsInteractive provides a mock function with no fields
func (_m *MockPasswordReader) IsInteractive() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for IsInteractive")
	}

	return ret.Bool(0)
}

type MockPasswordReader_IsInteractive_Call struct {
	*mock.Call
}

func (_e *MockPasswordReader_Expecter) IsInteractive() *MockPasswordReader_IsInteractive_Call {
	return &MockPasswordReader_IsInteractive_Call{Call: _e.mock.On("IsInteractive")}
}

func (_c *MockPasswordReader_IsInteractive_Call) Return(interactive bool) *MockPasswordReader_IsInteractive_Call {
	_c.Call.Return(interactive)
	return _c
}

// NewMockPasswordReader creates a new instance of MockPasswordReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPasswordReader(t testingT) *MockPasswordReader {
	m := &MockPasswordReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
