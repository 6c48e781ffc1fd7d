package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ppauth/internal/domain"
)

// MockProfileRepository is a mock of domain.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

type MockProfileRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileRepository) EXPECT() *MockProfileRepository_Expecter {
	return &MockProfileRepository_Expecter{mock: &_m.Mock}
}

// Load provides a mock function with given fields: ctx
func (_m *MockProfileRepository) Load(ctx context.Context) (domain.Profile, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	return ret.Get(0).(domain.Profile), ret.Error(1)
}

type MockProfileRepository_Load_Call struct {
	*mock.Call
}

func (_e *MockProfileRepository_Expecter) Load(ctx any) *MockProfileRepository_Load_Call {
	return &MockProfileRepository_Load_Call{Call: _e.mock.On("Load", ctx)}
}

func (_c *MockProfileRepository_Load_Call) Return(profile domain.Profile, err error) *MockProfileRepository_Load_Call {
	_c.Call.Return(profile, err)
	return _c
}

// Save provides a mock function with given fields: ctx, profile
func (_m *MockProfileRepository) Save(ctx context.Context, profile domain.Profile) error {
	ret := _m.Called(ctx, profile)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	return ret.Error(0)
}

type MockProfileRepository_Save_Call struct {
	*mock.Call
}

func (_e *MockProfileRepository_Expecter) Save(ctx any, profile any) *MockProfileRepository_Save_Call {
	return &MockProfileRepository_Save_Call{Call: _e.mock.On("Save", ctx, profile)}
}

func (_c *MockProfileRepository_Save_Call) Return(err error) *MockProfileRepository_Save_Call {
	_c.Call.Return(err)
	return _c
}

// Path provides a mock function with no fields
func (_m *MockProfileRepository) Path() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Path")
	}

	return ret.String(0)
}

type MockProfileRepository_Path_Call struct {
	*mock.Call
}

func (_e *MockProfileRepository_Expecter) Path() *MockProfileRepository_Path_Call {
	return &MockProfileRepository_Path_Call{Call: _e.mock.On("Path")}
}

func (_c *MockProfileRepository_Path_Call) Return(path string) *MockProfileRepository_Path_Call {
	_c.Call.Return(path)
	return _c
}

// NewMockProfileRepository creates a new instance of MockProfileRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProfileRepository(t testingT) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
