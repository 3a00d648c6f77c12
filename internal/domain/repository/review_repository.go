package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (business user, reviewer) pair
	// already has a review. The storage layer's unique index raises this even
	// when two requests race past the application-level check.
	ErrDuplicateReview = errors.New("review already exists for this pair")
)

// Review list ordering keys accepted by the persistence layer.
const (
	ReviewOrderUpdatedAtAsc  = "updated_at"
	ReviewOrderUpdatedAtDesc = "-updated_at"
	ReviewOrderRatingAsc     = "rating"
	ReviewOrderRatingDesc    = "-rating"
)

// ReviewListQuery describes a filtered, ordered review listing.
type ReviewListQuery struct {
	BusinessUserID *uuid.UUID // Exact match on the reviewed business user.
	ReviewerID     *uuid.UUID // Exact match on the review author.
	Ordering       string     // One of the ReviewOrder* keys; ties broken by id.
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review, translating a unique-constraint violation
	// on the (business user, reviewer) pair into ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsForPair reports whether the reviewer already reviewed the business user.
	ExistsForPair(ctx context.Context, businessUserID, reviewerID uuid.UUID) (bool, error)

	// List returns reviews matching the query.
	List(ctx context.Context, query ReviewListQuery) ([]*entity.Review, error)

	// Update saves rating and description changes.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of reviews.
	Count(ctx context.Context) (int64, error)

	// AverageRating returns the mean rating across all reviews, and zero when
	// no reviews exist.
	AverageRating(ctx context.Context) (float64, error)
}
