package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderInProgress is the initial status of every new order.
	OrderInProgress OrderStatus = "in_progress"
	// OrderCompleted marks an order the business has fulfilled.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled marks an order that was called off.
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value. Any valid status may
// transition to any other; there is deliberately no state machine here.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a customer's point-in-time purchase of one offer tier. All package
// fields are copied from the chosen detail at creation time, so later edits or
// deletion of the offer never touch an existing order.
type Order struct {
	ID                 uuid.UUID
	CustomerUserID     uuid.UUID
	BusinessUserID     uuid.UUID
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          TierType
	Status             OrderStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrderSnapshot builds an order by copying the package fields out of the
// chosen detail. Features are copied, not aliased, so the snapshot stays
// independent of the source detail.
func NewOrderSnapshot(detail *OfferDetail, customerID, businessID uuid.UUID) *Order {
	features := make([]string, len(detail.Features))
	copy(features, detail.Features)

	return &Order{
		CustomerUserID:     customerID,
		BusinessUserID:     businessID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType,
		Status:             OrderInProgress,
	}
}
