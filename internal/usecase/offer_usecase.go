package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer pagination bounds. Clients may raise the page size up to the cap.
const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// OfferUsecase defines the interface for the offer catalog.
type OfferUsecase interface {
	// ListOffers is a read-only listing open to unauthenticated callers.
	ListOffers(ctx context.Context, input *OfferListInput) (*OfferPage, error)

	// CreateOffer persists an offer with its three tiers atomically.
	// Only business profiles may call it.
	CreateOffer(ctx context.Context, principalID uuid.UUID, input *CreateOfferInput) (*OfferView, error)

	// GetOffer retrieves one offer with aggregates.
	GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error)

	// GetOfferDetail retrieves a single tier row.
	GetOfferDetail(ctx context.Context, id uuid.UUID) (*OfferDetailView, error)

	// UpdateOffer applies a partial update; details are matched by tier.
	// Only the owner may call it.
	UpdateOffer(ctx context.Context, principalID, id uuid.UUID, input *UpdateOfferInput) (*OfferView, error)

	// DeleteOffer removes the offer and its details. Only the owner may call it.
	DeleteOffer(ctx context.Context, principalID, id uuid.UUID) error
}

// OfferListInput carries the client's filter, search, ordering and paging
// parameters. Zero values mean "not set".
type OfferListInput struct {
	CreatorID       *uuid.UUID
	MinPrice        *decimal.Decimal
	MaxDeliveryTime *int
	Search          string
	Ordering        string // "updated_at" or "min_price", optionally "-" prefixed.
	Page            int
	PageSize        int
}

// OfferDetailInput is one tier in a create or update payload. Pointer fields
// allow partial tier patches during updates; create requires all of them.
type OfferDetailInput struct {
	Title              *string          `json:"title,omitempty"`
	Revisions          *int             `json:"revisions,omitempty"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days,omitempty" validate:"omitempty,gt=0"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Features           []string         `json:"features,omitempty"`
	OfferType          string           `json:"offer_type"`
}

// CreateOfferInput defines the payload for creating an offer with its tiers.
type CreateOfferInput struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Details     []OfferDetailInput `json:"details"`
}

// UpdateOfferInput defines a partial offer update. Nil fields are untouched.
type UpdateOfferInput struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Image       *string            `json:"image,omitempty"`
	Details     []OfferDetailInput `json:"details,omitempty"`
}
