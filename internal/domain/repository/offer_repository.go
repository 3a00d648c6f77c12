package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"market/internal/domain/entity"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferDetailNotFound is returned when a single offer detail is not found.
	ErrOfferDetailNotFound = errors.New("offer detail not found")
)

// Offer list ordering keys accepted by the persistence layer. The usecase
// validates client input down to this set before building a query.
const (
	OfferOrderUpdatedAtAsc  = "updated_at"
	OfferOrderUpdatedAtDesc = "-updated_at"
	OfferOrderMinPriceAsc   = "min_price"
	OfferOrderMinPriceDesc  = "-min_price"
)

// OfferListQuery describes one page of the offer catalog. MinPrice and
// MaxDeliveryTime match against the minimum across an offer's tiers, not
// against any individual tier.
type OfferListQuery struct {
	CreatorID       *uuid.UUID       // Exact match on the owning user.
	MinPrice        *decimal.Decimal // Keep offers whose min tier price is >= this.
	MaxDeliveryTime *int             // Keep offers whose min tier delivery is <= this.
	Search          string           // Case-insensitive substring over title OR description.
	Ordering        string           // One of the OfferOrder* keys; ties broken by id.
	Offset          int
	Limit           int
}

// OfferRepository defines the standard operations for offer persistence.
type OfferRepository interface {
	// List returns one page of offers with details preloaded, plus the total
	// number of offers matching the query regardless of pagination.
	List(ctx context.Context, query OfferListQuery) ([]*entity.Offer, int64, error)

	// FindByID retrieves a single offer with its details.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindDetailByID retrieves a single tier row.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error)

	// Create persists a new offer together with all of its details.
	Create(ctx context.Context, offer *entity.Offer) error

	// Update saves the offer row and upserts its details. Details with a zero
	// ID are inserted, existing ones are updated in place.
	Update(ctx context.Context, offer *entity.Offer) error

	// Delete removes the offer and its dependent detail rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of offers.
	Count(ctx context.Context) (int64, error)
}
