package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"market/internal/delivery/http/router/handler"
	"market/internal/mocks"
	"market/internal/usecase"
)

func newOrderHandler(t *testing.T) (*handler.OrderHandler, *mocks.MockOrderUsecase) {
	orderUC := mocks.NewMockOrderUsecase(t)
	h := handler.NewOrderHandler(handler.OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  discardLogger(),
	})

	return h, orderUC
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("creates an order from a valid payload", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		principalID := uuid.New()
		detailID := uuid.New()

		orderUC.On("CreateOrder", mock.Anything, principalID, detailID).
			Return(&usecase.OrderView{ID: uuid.New(), CustomerUser: principalID}, nil)

		c, rec := newRequestContext(http.MethodPost, "/api/orders/", `{"offer_detail_id":"`+detailID.String()+`"}`)
		authenticate(c, principalID)

		require.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a null body without calling the usecase", func(t *testing.T) {
		h, _ := newOrderHandler(t)

		c, rec := newRequestContext(http.MethodPost, "/api/orders/", `null`)
		authenticate(c, uuid.New())

		require.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("rejects an empty object missing the detail id", func(t *testing.T) {
		h, _ := newOrderHandler(t)

		c, rec := newRequestContext(http.MethodPost, "/api/orders/", `{}`)
		authenticate(c, uuid.New())

		require.NoError(t, h.CreateOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("rejects a body without a status", func(t *testing.T) {
		h, _ := newOrderHandler(t)

		c, rec := newRequestContext(http.MethodPatch, "/api/orders/"+uuid.NewString()+"/", `{}`)
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())
		authenticate(c, uuid.New())

		require.NoError(t, h.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a null body", func(t *testing.T) {
		h, _ := newOrderHandler(t)

		c, rec := newRequestContext(http.MethodPatch, "/api/orders/"+uuid.NewString()+"/", `null`)
		c.SetParamNames("id")
		c.SetParamValues(uuid.NewString())
		authenticate(c, uuid.New())

		require.NoError(t, h.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
