package usecase

import (
	"context"

	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// OrderUsecase defines the interface for the order ledger.
type OrderUsecase interface {
	// CreateOrder snapshots the chosen tier into a new order.
	// Only customer profiles may call it.
	CreateOrder(ctx context.Context, principalID, offerDetailID uuid.UUID) (*OrderView, error)

	// ListOrders returns orders where the principal is either party.
	ListOrders(ctx context.Context, principalID uuid.UUID) ([]*OrderView, error)

	// GetOrder retrieves one order.
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// UpdateOrderStatus changes the status; only the order's business user may
	// call it. Any status may transition to any other.
	UpdateOrderStatus(ctx context.Context, principalID, id uuid.UUID, status string) (*OrderView, error)

	// DeleteOrder removes an order; administrators only.
	DeleteOrder(ctx context.Context, principalID, id uuid.UUID) error

	// CountOrders counts a business user's orders in the given status. It
	// fails with a not-found error unless a business profile exists for the id.
	CountOrders(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}

// CreateOrderInput is the payload for placing an order.
type CreateOrderInput struct {
	OfferDetailID uuid.UUID `json:"offer_detail_id" validate:"required"`
}

// UpdateOrderStatusInput is the payload for a status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}
