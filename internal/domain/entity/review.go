package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating and comment about a business user. At most
// one review may ever exist per (business user, reviewer) pair; the storage
// layer enforces this with a composite unique index.
type Review struct {
	ID             uuid.UUID
	BusinessUserID uuid.UUID // The reviewed business user.
	ReviewerID     uuid.UUID // Always the authenticated customer, never caller input.
	Rating         int       // Bounded to [MinRating, MaxRating].
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidRating reports whether the rating falls inside the allowed range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
