package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCodeGenerator is a mock of domain.CodeGenerator.
type MockCodeGenerator struct {
	mock.Mock
}

type MockCodeGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCodeGenerator) EXPECT() *MockCodeGenerator_Expecter {
	return &MockCodeGenerator_Expecter{mock: &_m.Mock}
}

// Code provides a mock function with given fields: at
func (_m *MockCodeGenerator) Code(at time.Time) (string, error) {
	ret := _m.Called(at)

	if len(ret) == 0 {
		panic("no return value specified for Code")
	}

	return ret.String(0), ret.Error(1)
}

type MockCodeGenerator_Code_Call struct {
	*mock.Call
}

func (_e *MockCodeGenerator_Expecter) Code(at any) *MockCodeGenerator_Code_Call {
	return &MockCodeGenerator_Code_Call{Call: _e.mock.On("Code", at)}
}

func (_c *MockCodeGenerator_Code_Call) Return(code string, err error) *MockCodeGenerator_Code_Call {
	_c.Call.Return(code, err)
	return _c
}

// NewMockCodeGenerator creates a new instance of MockCodeGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCodeGenerator(t testingT) *MockCodeGenerator {
	m := &MockCodeGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
