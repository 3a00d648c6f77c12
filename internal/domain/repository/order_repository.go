package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are immutable snapshots apart from their status field.
type OrderRepository interface {
	// Create persists a new order snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListForUser returns every order where the user is the customer or the
	// business party, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Update saves the order row; used for status changes.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes the order.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByBusinessAndStatus counts orders held by a business user in the
	// given status.
	CountByBusinessAndStatus(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error)
}
