package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
)

// MockFileSystemAdapter is a mock of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

type MockFileSystemAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFileSystemAdapter) EXPECT() *MockFileSystemAdapter_Expecter {
	return &MockFileSystemAdapter_Expecter{mock: &_m.Mock}
}

// ReadFile provides a mock function with given fields: path
func (_m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for ReadFile")
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

type MockFileSystemAdapter_ReadFile_Call struct {
	*mock.Call
}

func (_e *MockFileSystemAdapter_Expecter) ReadFile(path any) *MockFileSystemAdapter_ReadFile_Call {
	return &MockFileSystemAdapter_ReadFile_Call{Call: _e.mock.On("ReadFile", path)}
}

func (_c *MockFileSystemAdapter_ReadFile_Call) Return(data []byte, err error) *MockFileSystemAdapter_ReadFile_Call {
	_c.Call.Return(data, err)
	return _c
}

// WriteFile provides a mock function with given fields: path, data, perm
func (_m *MockFileSystemAdapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	ret := _m.Called(path, data, perm)

	if len(ret) == 0 {
		panic("no return value specified for WriteFile")
	}

	return ret.Error(0)
}

type MockFileSystemAdapter_WriteFile_Call struct {
	*mock.Call
}

func (_e *MockFileSystemAdapter_Expecter) WriteFile(path any, data any, perm any) *MockFileSystemAdapter_WriteFile_Call {
	return &MockFileSystemAdapter_WriteFile_Call{Call: _e.mock.On("WriteFile", path, data, perm)}
}

func (_c *MockFileSystemAdapter_WriteFile_Call) Run(
	run func(path string, data []byte, perm os.FileMode),
) *MockFileSystemAdapter_WriteFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].([]byte), args[2].(os.FileMode))
	})
	return _c
}

func (_c *MockFileSystemAdapter_WriteFile_Call) Return(err error) *MockFileSystemAdapter_WriteFile_Call {
	_c.Call.Return(err)
	return _c
}

// MkdirAll provides a mock function with given fields: path, perm
func (_m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	ret := _m.Called(path, perm)

	if len(ret) == 0 {
		panic("no return value specified for MkdirAll")
	}

	return ret.Error(0)
}

type MockFileSystemAdapter_MkdirAll_Call struct {
	*mock.Call
}

func (_e *MockFileSystemAdapter_Expecter) MkdirAll(path any, perm any) *MockFileSystemAdapter_MkdirAll_Call {
	return &MockFileSystemAdapter_MkdirAll_Call{Call: _e.mock.On("MkdirAll", path, perm)}
}

func (_c *MockFileSystemAdapter_MkdirAll_Call) Return(err error) *MockFileSystemAdapter_MkdirAll_Call {
	_c.Call.Return(err)
	return _c
}

// Chmod provides a mock function with given fields: path, perm
func (_m *MockFileSystemAdapter) Chmod(path string, perm os.FileMode) error {
	ret := _m.Called(path, perm)

	if len(ret) == 0 {
		panic("no return value specified for Chmod")
	}

	return ret.Error(0)
}

type MockFileSystemAdapter_Chmod_Call struct {
	*mock.Call
}

func (_e *MockFileSystemAdapter_Expecter) Chmod(path any, perm any) *MockFileSystemAdapter_Chmod_Call {
	return &MockFileSystemAdapter_Chmod_Call{Call: _e.mock.On("Chmod", path, perm)}
}

func (_c *MockFileSystemAdapter_Chmod_Call) Return(err error) *MockFileSystemAdapter_Chmod_Call {
	_c.Call.Return(err)
	return _c
}

// UserHomeDir provides a mock function with no fields
func (_m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserHomeDir")
	}

	return ret.String(0), ret.Error(1)
}

type MockFileSystemAdapter_UserHomeDir_Call struct {
	*mock.Call
}

func (_e *MockFileSystemAdapter_Expecter) UserHomeDir() *MockFileSystemAdapter_UserHomeDir_Call {
	return &MockFileSystemAdapter_UserHomeDir_Call{Call: _e.mock.On("UserHomeDir")}
}

func (_c *MockFileSystemAdapter_UserHomeDir_Call) Return(dir string, err error) *MockFileSystemAdapter_UserHomeDir_Call {
	_c.Call.Return(dir, err)
	return _c
}

// NewMockFileSystemAdapter creates a new instance of MockFileSystemAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockFileSystemAdapter(t testingT) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
