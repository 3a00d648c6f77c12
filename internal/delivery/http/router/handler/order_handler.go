package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/response"
	"market/internal/domain/entity"
	"market/internal/usecase"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrder snapshots the chosen tier into a new order for the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.orderUC.CreateOrder(c.Request().Context(), principalID, input.OfferDetailID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Order created successfully")
}

// ListOrders returns every order where the caller is either party.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.orderUC.ListOrders(c.Request().Context(), principalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetOrder retrieves one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	view, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateOrderStatus changes the order status; business party only.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), principalID, id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Order status updated successfully")
}

// DeleteOrder removes an order; administrators only.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	principalID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), principalID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CountOrders returns a business user's total order count.
func (h *OrderHandler) CountOrders(c echo.Context) error {
	return h.countByStatus(c, entity.OrderInProgress, "order_count")
}

// CountCompletedOrders returns a business user's completed order count.
func (h *OrderHandler) CountCompletedOrders(c echo.Context) error {
	return h.countByStatus(c, entity.OrderCompleted, "completed_order_count")
}

func (h *OrderHandler) countByStatus(c echo.Context, status entity.OrderStatus, key string) error {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid business user ID format")
	}

	count, err := h.orderUC.CountOrders(c.Request().Context(), businessUserID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{key: count}, "")
}
