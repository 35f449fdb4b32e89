// Package mocks provides mock implementations of database abstractions for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock implementation of database.TxManager. When the expectation
// returns a nil error the callback runs with the caller's context.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
