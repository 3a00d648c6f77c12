package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for the review registry.
type ReviewUsecase interface {
	// CreateReview records a customer's review of a business user. At most one
	// review may exist per (reviewer, business user) pair.
	CreateReview(ctx context.Context, principalID uuid.UUID, input *CreateReviewInput) (*ReviewView, error)

	// ListReviews returns reviews matching the optional filters.
	ListReviews(ctx context.Context, input *ReviewListInput) ([]*ReviewView, error)

	// GetReview retrieves one review.
	GetReview(ctx context.Context, id uuid.UUID) (*ReviewView, error)

	// UpdateReview changes rating and/or description; authoring reviewer only.
	UpdateReview(ctx context.Context, principalID, id uuid.UUID, input *UpdateReviewInput) (*ReviewView, error)

	// DeleteReview removes a review; authoring reviewer only.
	DeleteReview(ctx context.Context, principalID, id uuid.UUID) error
}

// CreateReviewInput is the payload for creating a review. The reviewer is
// always the authenticated principal and never part of the payload.
type CreateReviewInput struct {
	BusinessUserID uuid.UUID `json:"business_user" validate:"required"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Description    string    `json:"description"`
}

// ReviewListInput carries the optional list filters and ordering.
type ReviewListInput struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string // "updated_at" or "rating", optionally "-" prefixed.
}

// UpdateReviewInput defines a partial review update; only rating and
// description are mutable.
type UpdateReviewInput struct {
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Description *string `json:"description,omitempty"`
}
