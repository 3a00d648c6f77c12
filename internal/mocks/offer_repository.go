package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
)

// MockOfferRepository is a testify mock for repository.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

// NewMockOfferRepository creates a mock and registers expectation checks on cleanup.
func NewMockOfferRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferRepository {
	m := &MockOfferRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferRepository) List(ctx context.Context, query repository.OfferListQuery) ([]*entity.Offer, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OfferDetail), args.Error(1)
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	args := m.Called(ctx, offer)

	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	args := m.Called(ctx, offer)

	return args.Error(0)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockOfferRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
