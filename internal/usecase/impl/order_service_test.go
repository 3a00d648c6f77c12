package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
)

func TestOrderService_CreateOrder(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	businessID := uuid.New()

	t.Run("snapshots the chosen tier", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		offer := sampleOffer(businessID)
		detail := offer.DetailByTier(entity.TierStandard)

		m.users.On("FindByID", mock.Anything, customerID).Return(customerUser(customerID), nil)
		m.offers.On("FindDetailByID", mock.Anything, detail.ID).Return(detail, nil)
		m.offers.On("FindByID", mock.Anything, offer.ID).Return(offer, nil)
		m.orders.On("Create", mock.Anything, mock.MatchedBy(func(order *entity.Order) bool {
			return order.CustomerUserID == customerID &&
				order.BusinessUserID == businessID &&
				order.Status == entity.OrderInProgress &&
				order.Title == detail.Title &&
				order.Price.Equal(detail.Price)
		})).Return(nil)

		view, err := srv.CreateOrder(context.Background(), customerID, detail.ID)

		require.NoError(t, err)
		assert.Equal(t, customerID, view.CustomerUser)
		assert.Equal(t, businessID, view.BusinessUser)
		assert.Equal(t, "in_progress", view.Status)
		assert.Equal(t, "standard", view.OfferType)
		assert.True(t, view.Price.Equal(decimal.NewFromInt(200)))
	})

	t.Run("snapshot is independent of the source detail", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		offer := sampleOffer(businessID)
		detail := offer.DetailByTier(entity.TierPremium)

		m.users.On("FindByID", mock.Anything, customerID).Return(customerUser(customerID), nil)
		m.offers.On("FindDetailByID", mock.Anything, detail.ID).Return(detail, nil)
		m.offers.On("FindByID", mock.Anything, offer.ID).Return(offer, nil)
		m.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

		view, err := srv.CreateOrder(context.Background(), customerID, detail.ID)
		require.NoError(t, err)

		detail.Features[0] = "mutated"
		detail.Title = "mutated"

		assert.Equal(t, "Premium logo", view.Title)
		assert.Equal(t, []string{"5 concepts", "source files"}, view.Features)
	})

	t.Run("rejects business profiles", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)

		_, err := srv.CreateOrder(context.Background(), businessID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrNotCustomerOrder)
	})

	t.Run("reports missing detail", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		detailID := uuid.New()
		m.users.On("FindByID", mock.Anything, customerID).Return(customerUser(customerID), nil)
		m.offers.On("FindDetailByID", mock.Anything, detailID).Return(nil, repository.ErrOfferDetailNotFound)

		_, err := srv.CreateOrder(context.Background(), customerID, detailID)

		assert.ErrorIs(t, err, domainerrors.ErrOfferDetailNotFound)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	businessID := uuid.New()

	newOrder := func() *entity.Order {
		return &entity.Order{
			ID:             uuid.New(),
			CustomerUserID: customerID,
			BusinessUserID: businessID,
			Title:          "Standard logo",
			Price:          decimal.NewFromInt(200),
			OfferType:      entity.TierStandard,
			Status:         entity.OrderInProgress,
		}
	}

	t.Run("business party may change status", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		order := newOrder()
		m.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.orders.On("Update", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.Status == entity.OrderCompleted
		})).Return(nil)

		view, err := srv.UpdateOrderStatus(context.Background(), businessID, order.ID, "completed")

		require.NoError(t, err)
		assert.Equal(t, "completed", view.Status)
	})

	t.Run("completed may revert to in_progress", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		order := newOrder()
		order.Status = entity.OrderCompleted
		m.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		m.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

		view, err := srv.UpdateOrderStatus(context.Background(), businessID, order.ID, "in_progress")

		require.NoError(t, err)
		assert.Equal(t, "in_progress", view.Status)
	})

	t.Run("customer party is rejected", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		order := newOrder()
		m.orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := srv.UpdateOrderStatus(context.Background(), customerID, order.ID, "completed")

		assert.ErrorIs(t, err, domainerrors.ErrNotOrderBusiness)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		_, err := srv.UpdateOrderStatus(context.Background(), businessID, uuid.New(), "done")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Parallel()

	t.Run("admin may delete", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		adminID := uuid.New()
		admin := customerUser(adminID)
		admin.Admin = true
		orderID := uuid.New()

		m.users.On("FindByID", mock.Anything, adminID).Return(admin, nil)
		m.orders.On("FindByID", mock.Anything, orderID).Return(&entity.Order{ID: orderID}, nil)
		m.orders.On("Delete", mock.Anything, orderID).Return(nil)

		err := srv.DeleteOrder(context.Background(), adminID, orderID)

		require.NoError(t, err)
	})

	t.Run("parties may not delete", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		businessID := uuid.New()
		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)

		err := srv.DeleteOrder(context.Background(), businessID, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrAdminOnly)
	})
}

func TestOrderService_CountOrders(t *testing.T) {
	t.Parallel()

	t.Run("counts by status", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		businessID := uuid.New()
		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)
		m.orders.On("CountByBusinessAndStatus", mock.Anything, businessID, entity.OrderCompleted).Return(int64(4), nil)

		count, err := srv.CountOrders(context.Background(), businessID, entity.OrderCompleted)

		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("rejects non-business ids", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		customerID := uuid.New()
		m.users.On("FindByID", mock.Anything, customerID).Return(customerUser(customerID), nil)

		_, err := srv.CountOrders(context.Background(), customerID, entity.OrderInProgress)

		assert.ErrorIs(t, err, domainerrors.ErrBusinessUserNotFound)
	})

	t.Run("rejects unknown ids", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewOrderService(m.txm, m.logger)

		id := uuid.New()
		m.users.On("FindByID", mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		_, err := srv.CountOrders(context.Background(), id, entity.OrderInProgress)

		assert.ErrorIs(t, err, domainerrors.ErrBusinessUserNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Parallel()

	m := newTestMocks(t)
	srv := NewOrderService(m.txm, m.logger)

	userID := uuid.New()
	m.orders.On("ListForUser", mock.Anything, userID).Return([]*entity.Order{
		{ID: uuid.New(), CustomerUserID: userID, Status: entity.OrderInProgress, OfferType: entity.TierBasic},
		{ID: uuid.New(), BusinessUserID: userID, Status: entity.OrderCompleted, OfferType: entity.TierPremium},
	}, nil)

	views, err := srv.ListOrders(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.NotNil(t, views[0].Features)
}
