// Package mocks holds testify mocks for the domain interfaces, in the
// expecter layout used across the test suites.
package mocks

import "github.com/stretchr/testify/mock"

// testingT is what a mock constructor needs from *testing.T.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}
