package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/usecase"
)

func TestReviewService_CreateReview(t *testing.T) {
	t.Parallel()

	reviewerID := uuid.New()
	businessID := uuid.New()

	t.Run("creates review", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.users.On("FindByID", mock.Anything, reviewerID).Return(customerUser(reviewerID), nil)
		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)
		m.reviews.On("ExistsForPair", mock.Anything, businessID, reviewerID).Return(false, nil)
		m.reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.BusinessUserID == businessID && r.ReviewerID == reviewerID && r.Rating == 4
		})).Return(nil)

		view, err := srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessUserID: businessID,
			Rating:         4,
			Description:    "Great work",
		})

		require.NoError(t, err)
		assert.Equal(t, reviewerID, view.Reviewer)
		assert.Equal(t, businessID, view.BusinessUser)
		assert.Equal(t, 4, view.Rating)
	})

	t.Run("rejects second review for the same pair", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.users.On("FindByID", mock.Anything, reviewerID).Return(customerUser(reviewerID), nil)
		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)
		m.reviews.On("ExistsForPair", mock.Anything, businessID, reviewerID).Return(true, nil)

		_, err := srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessUserID: businessID,
			Rating:         5,
		})

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	})

	t.Run("maps a concurrent duplicate to the same error", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.users.On("FindByID", mock.Anything, reviewerID).Return(customerUser(reviewerID), nil)
		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)
		m.reviews.On("ExistsForPair", mock.Anything, businessID, reviewerID).Return(false, nil)
		m.reviews.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateReview)

		_, err := srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessUserID: businessID,
			Rating:         5,
		})

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	})

	t.Run("rejects business profiles", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.users.On("FindByID", mock.Anything, businessID).Return(businessUser(businessID), nil)

		_, err := srv.CreateReview(context.Background(), businessID, &usecase.CreateReviewInput{
			BusinessUserID: uuid.New(),
			Rating:         5,
		})

		assert.ErrorIs(t, err, domainerrors.ErrNotCustomerReview)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		for _, rating := range []int{0, 6, -1} {
			_, err := srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
				BusinessUserID: businessID,
				Rating:         rating,
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
		}
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	t.Parallel()

	t.Run("unknown ordering falls back silently", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.reviews.On("List", mock.Anything, mock.MatchedBy(func(q repository.ReviewListQuery) bool {
			return q.Ordering == repository.ReviewOrderUpdatedAtDesc
		})).Return([]*entity.Review{}, nil)

		_, err := srv.ListReviews(context.Background(), &usecase.ReviewListInput{Ordering: "created_at"})

		require.NoError(t, err)
	})

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		businessID := uuid.New()
		m.reviews.On("List", mock.Anything, mock.MatchedBy(func(q repository.ReviewListQuery) bool {
			return q.BusinessUserID != nil && *q.BusinessUserID == businessID &&
				q.Ordering == repository.ReviewOrderRatingDesc
		})).Return([]*entity.Review{
			{ID: uuid.New(), BusinessUserID: businessID, Rating: 5},
			{ID: uuid.New(), BusinessUserID: businessID, Rating: 3},
		}, nil)

		views, err := srv.ListReviews(context.Background(), &usecase.ReviewListInput{
			BusinessUserID: &businessID,
			Ordering:       repository.ReviewOrderRatingDesc,
		})

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, 5, views[0].Rating)
	})
}

func TestReviewService_UpdateReview(t *testing.T) {
	t.Parallel()

	reviewerID := uuid.New()

	newReview := func() *entity.Review {
		return &entity.Review{
			ID:             uuid.New(),
			BusinessUserID: uuid.New(),
			ReviewerID:     reviewerID,
			Rating:         3,
			Description:    "okay",
		}
	}

	t.Run("author may patch rating", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		review := newReview()
		m.reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)
		m.reviews.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.Rating == 5 && r.Description == "okay"
		})).Return(nil)

		view, err := srv.UpdateReview(context.Background(), reviewerID, review.ID, &usecase.UpdateReviewInput{
			Rating: intPtr(5),
		})

		require.NoError(t, err)
		assert.Equal(t, 5, view.Rating)
	})

	t.Run("rejects non-author", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		review := newReview()
		m.reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)

		_, err := srv.UpdateReview(context.Background(), uuid.New(), review.ID, &usecase.UpdateReviewInput{
			Description: strPtr("changed"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		_, err := srv.UpdateReview(context.Background(), reviewerID, uuid.New(), &usecase.UpdateReviewInput{
			Rating: intPtr(9),
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Parallel()

	reviewerID := uuid.New()
	review := &entity.Review{ID: uuid.New(), ReviewerID: reviewerID}

	t.Run("author may delete", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)
		m.reviews.On("Delete", mock.Anything, review.ID).Return(nil)

		require.NoError(t, srv.DeleteReview(context.Background(), reviewerID, review.ID))
	})

	t.Run("rejects non-author", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewReviewService(m.txm, m.logger)

		m.reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)

		err := srv.DeleteReview(context.Background(), uuid.New(), review.ID)

		assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	})
}
