package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"market/internal/domain/entity"
	"market/internal/usecase"
)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock and registers expectation checks on cleanup.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

// MockOfferUsecase is a testify mock for usecase.OfferUsecase.
type MockOfferUsecase struct {
	mock.Mock
}

// NewMockOfferUsecase creates a mock and registers expectation checks on cleanup.
func NewMockOfferUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferUsecase {
	m := &MockOfferUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferUsecase) ListOffers(ctx context.Context, input *usecase.OfferListInput) (*usecase.OfferPage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OfferPage), args.Error(1)
}

func (m *MockOfferUsecase) CreateOffer(ctx context.Context, principalID uuid.UUID, input *usecase.CreateOfferInput) (*usecase.OfferView, error) {
	args := m.Called(ctx, principalID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OfferView), args.Error(1)
}

func (m *MockOfferUsecase) GetOffer(ctx context.Context, id uuid.UUID) (*usecase.OfferView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OfferView), args.Error(1)
}

func (m *MockOfferUsecase) GetOfferDetail(ctx context.Context, id uuid.UUID) (*usecase.OfferDetailView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OfferDetailView), args.Error(1)
}

func (m *MockOfferUsecase) UpdateOffer(ctx context.Context, principalID, id uuid.UUID, input *usecase.UpdateOfferInput) (*usecase.OfferView, error) {
	args := m.Called(ctx, principalID, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OfferView), args.Error(1)
}

func (m *MockOfferUsecase) DeleteOffer(ctx context.Context, principalID, id uuid.UUID) error {
	args := m.Called(ctx, principalID, id)

	return args.Error(0)
}

// MockOrderUsecase is a testify mock for usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

// NewMockOrderUsecase creates a mock and registers expectation checks on cleanup.
func NewMockOrderUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, principalID, offerDetailID uuid.UUID) (*usecase.OrderView, error) {
	args := m.Called(ctx, principalID, offerDetailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OrderView), args.Error(1)
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context, principalID uuid.UUID) ([]*usecase.OrderView, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*usecase.OrderView), args.Error(1)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OrderView), args.Error(1)
}

func (m *MockOrderUsecase) UpdateOrderStatus(ctx context.Context, principalID, id uuid.UUID, status string) (*usecase.OrderView, error) {
	args := m.Called(ctx, principalID, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.OrderView), args.Error(1)
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, principalID, id uuid.UUID) error {
	args := m.Called(ctx, principalID, id)

	return args.Error(0)
}

func (m *MockOrderUsecase) CountOrders(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, businessUserID, status)

	return args.Get(0).(int64), args.Error(1)
}
