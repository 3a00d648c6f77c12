// Package mocks provides hand-written test doubles for the repository and
// domain service interfaces.
package mocks

import (
	"context"

	"market/internal/domain/repository"
)

// MockTransactionManager runs the callback against a fixed repository factory
// so tests exercise the real usecase flow without a database. Transactions are
// a no-op; rollback behavior is covered by returning errors from the mocks.
type MockTransactionManager struct {
	factory repository.RepositoryFactory
}

// NewMockTransactionManager builds a transaction manager bound to the factory.
func NewMockTransactionManager(factory repository.RepositoryFactory) *MockTransactionManager {
	return &MockTransactionManager{factory: factory}
}

// Execute invokes fn directly with the configured factory.
func (m *MockTransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// MockRepositoryFactory hands out the configured repository mocks. Unset
// repositories return nil, which makes an unexpected access fail loudly.
type MockRepositoryFactory struct {
	Users   repository.UserRepository
	Auths   repository.AuthRepository
	Offers  repository.OfferRepository
	Orders  repository.OrderRepository
	Reviews repository.ReviewRepository
}

// UserRepo returns the configured user repository.
func (f *MockRepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

// AuthRepo returns the configured credential repository.
func (f *MockRepositoryFactory) AuthRepo() repository.AuthRepository { return f.Auths }

// OfferRepo returns the configured offer repository.
func (f *MockRepositoryFactory) OfferRepo() repository.OfferRepository { return f.Offers }

// OrderRepo returns the configured order repository.
func (f *MockRepositoryFactory) OrderRepo() repository.OrderRepository { return f.Orders }

// ReviewRepo returns the configured review repository.
func (f *MockRepositoryFactory) ReviewRepo() repository.ReviewRepository { return f.Reviews }
