package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/policy"
	"market/internal/domain/repository"
	"market/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateReview records a customer's review. The pair check inside the
// transaction is a fast path; the storage layer's unique index is the real
// guard, and a concurrent duplicate surfaces as the same error.
func (srv *reviewService) CreateReview(ctx context.Context, principalID uuid.UUID, input *usecase.CreateReviewInput) (*usecase.ReviewView, error) {
	srv.logger.Info("Creating review", "reviewerID", principalID, "businessUserID", input.BusinessUserID)

	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	review := &entity.Review{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     principalID,
		Rating:         input.Rating,
		Description:    input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principal, err := findUser(ctx, repoFactory.UserRepo(), principalID)
		if err != nil {
			return err
		}
		if err := policy.CanCreateReview(principal); err != nil {
			return err
		}

		if _, err := findUser(ctx, repoFactory.UserRepo(), input.BusinessUserID); err != nil {
			return err
		}

		reviewRepo := repoFactory.ReviewRepo()
		exists, err := reviewRepo.ExistsForPair(ctx, input.BusinessUserID, principalID)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing review")
		}
		if exists {
			return domainerrors.ErrAlreadyReviewed
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrAlreadyReviewed
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return usecase.NewReviewView(review), nil
}

// ListReviews returns reviews matching the optional filters. An unknown
// ordering value silently falls back to newest-updated first.
func (srv *reviewService) ListReviews(ctx context.Context, input *usecase.ReviewListInput) ([]*usecase.ReviewView, error) {
	query := repository.ReviewListQuery{
		BusinessUserID: input.BusinessUserID,
		ReviewerID:     input.ReviewerID,
		Ordering:       normalizeReviewOrdering(input.Ordering),
	}

	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().List(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	views := make([]*usecase.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, usecase.NewReviewView(review))
	}

	return views, nil
}

// GetReview retrieves one review.
func (srv *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*usecase.ReviewView, error) {
	var review *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ReviewRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get review")
	}

	return usecase.NewReviewView(review), nil
}

// UpdateReview changes rating and/or description. Parties and timestamps are
// immutable after creation.
func (srv *reviewService) UpdateReview(ctx context.Context, principalID, id uuid.UUID, input *usecase.UpdateReviewInput) (*usecase.ReviewView, error) {
	srv.logger.Info("Updating review", "reviewID", id, "userID", principalID)

	if input.Rating != nil && !entity.ValidRating(*input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		found, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if err := policy.RequireOwner(found.ReviewerID, principalID); err != nil {
			return err
		}

		if input.Rating != nil {
			found.Rating = *input.Rating
		}
		if input.Description != nil {
			found.Description = *input.Description
		}

		if err := reviewRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		review = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return usecase.NewReviewView(review), nil
}

// DeleteReview removes a review; authoring reviewer only.
func (srv *reviewService) DeleteReview(ctx context.Context, principalID, id uuid.UUID) error {
	srv.logger.Info("Deleting review", "reviewID", id, "userID", principalID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		found, err := reviewRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if err := policy.RequireOwner(found.ReviewerID, principalID); err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// normalizeReviewOrdering maps client ordering input onto the allowed sort
// keys, silently defaulting rather than erroring on unknown values.
func normalizeReviewOrdering(ordering string) string {
	switch ordering {
	case repository.ReviewOrderUpdatedAtAsc, repository.ReviewOrderUpdatedAtDesc,
		repository.ReviewOrderRatingAsc, repository.ReviewOrderRatingDesc:
		return ordering
	default:
		return repository.ReviewOrderUpdatedAtDesc
	}
}
