package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"
)

// reviewOrderClauses maps the accepted ordering keys to SQL order expressions.
var reviewOrderClauses = map[string]string{
	repository.ReviewOrderUpdatedAtAsc:  "updated_at ASC, id ASC",
	repository.ReviewOrderUpdatedAtDesc: "updated_at DESC, id ASC",
	repository.ReviewOrderRatingAsc:     "rating ASC, id ASC",
	repository.ReviewOrderRatingDesc:    "rating DESC, id ASC",
}

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review. The composite unique index on
// (business_user_id, reviewer_id) turns a racing duplicate insert into
// ErrDuplicateReview.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// ExistsForPair reports whether the reviewer already reviewed the business user.
func (repo *reviewRepository) ExistsForPair(ctx context.Context, businessUserID, reviewerID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("business_user_id = ? AND reviewer_id = ?", businessUserID, reviewerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check for existing review")
	}

	return count > 0, nil
}

// List retrieves reviews matching the query filters and ordering.
func (repo *reviewRepository) List(ctx context.Context, query repository.ReviewListQuery) ([]*entity.Review, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if query.BusinessUserID != nil {
		tx = tx.Where("business_user_id = ?", *query.BusinessUserID)
	}
	if query.ReviewerID != nil {
		tx = tx.Where("reviewer_id = ?", *query.ReviewerID)
	}

	orderClause, ok := reviewOrderClauses[query.Ordering]
	if !ok {
		orderClause = reviewOrderClauses[repository.ReviewOrderUpdatedAtDesc]
	}

	var reviewModels []*model.ReviewModel
	if err := tx.Order(orderClause).Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Update saves rating and description changes.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":      review.Rating,
			"description": review.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes the review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Count returns the total number of reviews.
func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

// AverageRating returns the mean rating across all reviews, and zero when no
// reviews exist.
func (repo *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return average, nil
}

// --- Mapper Functions ---

func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:             reviewM.ID,
		BusinessUserID: reviewM.BusinessUserID,
		ReviewerID:     reviewM.ReviewerID,
		Rating:         reviewM.Rating,
		Description:    reviewM.Description,
		CreatedAt:      reviewM.CreatedAt,
		UpdatedAt:      reviewM.UpdatedAt,
	}
}

func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:             review.ID,
		BusinessUserID: review.BusinessUserID,
		ReviewerID:     review.ReviewerID,
		Rating:         review.Rating,
		Description:    review.Description,
		CreatedAt:      review.CreatedAt,
		UpdatedAt:      review.UpdatedAt,
	}
}
