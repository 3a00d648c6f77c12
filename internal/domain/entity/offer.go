package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierType tags one of the exactly three packages an offer must carry.
type TierType string

const (
	// TierBasic is the entry package of an offer.
	TierBasic TierType = "basic"
	// TierStandard is the middle package of an offer.
	TierStandard TierType = "standard"
	// TierPremium is the top package of an offer.
	TierPremium TierType = "premium"
)

// AllTiers lists the valid tier tags in their canonical order.
var AllTiers = []TierType{TierBasic, TierStandard, TierPremium}

// String returns the string representation of the TierType.
func (t TierType) String() string {
	return string(t)
}

// IsValid checks if the TierType is a valid value.
func (t TierType) IsValid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

// UnlimitedRevisions is the sentinel stored when a tier grants unlimited revisions.
const UnlimitedRevisions = -1

// Offer is a business user's published service listing. A persisted offer
// always owns exactly three details, one per tier.
type Offer struct {
	ID          uuid.UUID
	UserID      uuid.UUID // The owning business user.
	Title       string
	Description string
	Image       string // Opaque image reference assigned by the storage collaborator.
	Details     []*OfferDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OfferDetail is one priced package under an offer. It never exists without
// its parent and is replaced by tier-match during offer updates.
type OfferDetail struct {
	ID                 uuid.UUID
	OfferID            uuid.UUID
	Title              string
	Revisions          int // UnlimitedRevisions means no cap.
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string // Ordered feature descriptions.
	OfferType          TierType
}

// MinPrice returns the lowest tier price, or nil when the offer has no details.
// The comparison is decimal-exact.
func (o *Offer) MinPrice() *decimal.Decimal {
	if len(o.Details) == 0 {
		return nil
	}

	minimum := o.Details[0].Price
	for _, d := range o.Details[1:] {
		if d.Price.LessThan(minimum) {
			minimum = d.Price
		}
	}

	return &minimum
}

// MinDeliveryTime returns the lowest tier delivery time in days, or nil when
// the offer has no details.
func (o *Offer) MinDeliveryTime() *int {
	if len(o.Details) == 0 {
		return nil
	}

	minimum := o.Details[0].DeliveryTimeInDays
	for _, d := range o.Details[1:] {
		if d.DeliveryTimeInDays < minimum {
			minimum = d.DeliveryTimeInDays
		}
	}

	return &minimum
}

// DetailByTier returns the detail carrying the given tier tag, or nil.
func (o *Offer) DetailByTier(tier TierType) *OfferDetail {
	for _, d := range o.Details {
		if d.OfferType == tier {
			return d
		}
	}

	return nil
}
