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

// offerOrderClauses maps the accepted ordering keys to SQL order expressions.
// The id tiebreak keeps pagination stable when many rows share a sort value.
var offerOrderClauses = map[string]string{
	repository.OfferOrderUpdatedAtAsc:  "offers.updated_at ASC, offers.id ASC",
	repository.OfferOrderUpdatedAtDesc: "offers.updated_at DESC, offers.id ASC",
	repository.OfferOrderMinPriceAsc:   "agg.min_price ASC, offers.id ASC",
	repository.OfferOrderMinPriceDesc:  "agg.min_price DESC, offers.id ASC",
}

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// List returns one page of offers plus the total match count. The aggregate
// filters and the min_price ordering run against a grouped subquery over
// offer_details, so they always see the minimum across an offer's tiers.
func (repo *offerRepository) List(ctx context.Context, query repository.OfferListQuery) ([]*entity.Offer, int64, error) {
	aggregates := repo.db.
		Model(&model.OfferDetailModel{}).
		Select("offer_id, MIN(price) AS min_price, MIN(delivery_time_in_days) AS min_delivery_time").
		Group("offer_id")

	base := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Joins("LEFT JOIN (?) AS agg ON agg.offer_id = offers.id", aggregates)

	if query.CreatorID != nil {
		base = base.Where("offers.user_id = ?", *query.CreatorID)
	}
	if query.MinPrice != nil {
		base = base.Where("agg.min_price >= ?", *query.MinPrice)
	}
	if query.MaxDeliveryTime != nil {
		base = base.Where("agg.min_delivery_time <= ?", *query.MaxDeliveryTime)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		base = base.Where("offers.title ILIKE ? OR offers.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count offers")
	}

	orderClause, ok := offerOrderClauses[query.Ordering]
	if !ok {
		orderClause = offerOrderClauses[repository.OfferOrderUpdatedAtDesc]
	}

	var offerModels []*model.OfferModel
	if err := base.Session(&gorm.Session{}).
		Preload("Details").
		Order(orderClause).
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&offerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, total, nil
}

// FindByID retrieves a single offer with all of its details.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single tier row.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detailM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by ID")
	}

	return toOfferDetailDomain(&detailM), nil
}

// Create persists a new offer together with all of its details.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer carries a duplicated tier")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	// Update the entity with generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	for i, detailM := range offerM.Details {
		offer.Details[i].ID = detailM.ID
		offer.Details[i].OfferID = detailM.OfferID
	}

	return nil
}

// Update saves the offer row and upserts its details. Details carrying a zero
// ID are inserted as new tier rows, existing ones are updated in place.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]interface{}{
			"title":       offer.Title,
			"description": offer.Description,
			"image":       offer.Image,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	for _, detail := range offer.Details {
		detailM := fromOfferDetailDomain(detail)
		detailM.OfferID = offer.ID

		if detail.ID == uuid.Nil {
			if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return domainerrors.ErrValidationFailed.WrapMessage("offer carries a duplicated tier")
				}

				return errors.Wrap(err, "failed to insert offer detail")
			}

			detail.ID = detailM.ID
			detail.OfferID = detailM.OfferID

			continue
		}

		if err := repo.db.WithContext(ctx).
			Model(&model.OfferDetailModel{}).
			Where("id = ?", detail.ID).
			Updates(map[string]interface{}{
				"title":                 detailM.Title,
				"revisions":             detailM.Revisions,
				"delivery_time_in_days": detailM.DeliveryTimeInDays,
				"price":                 detailM.Price,
				"features":              detailM.Features,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to update offer detail")
		}
	}

	return nil
}

// Delete removes the offer; the CASCADE constraint removes its detail rows.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Count returns the total number of offers.
func (repo *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count offers")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOfferDomain(offerM *model.OfferModel) *entity.Offer {
	details := make([]*entity.OfferDetail, 0, len(offerM.Details))
	for _, detailM := range offerM.Details {
		details = append(details, toOfferDetailDomain(detailM))
	}

	return &entity.Offer{
		ID:          offerM.ID,
		UserID:      offerM.UserID,
		Title:       offerM.Title,
		Description: offerM.Description,
		Image:       offerM.Image,
		Details:     details,
		CreatedAt:   offerM.CreatedAt,
		UpdatedAt:   offerM.UpdatedAt,
	}
}

func toOfferDetailDomain(detailM *model.OfferDetailModel) *entity.OfferDetail {
	return &entity.OfferDetail{
		ID:                 detailM.ID,
		OfferID:            detailM.OfferID,
		Title:              detailM.Title,
		Revisions:          detailM.Revisions,
		DeliveryTimeInDays: detailM.DeliveryTimeInDays,
		Price:              detailM.Price,
		Features:           detailM.Features,
		OfferType:          entity.TierType(detailM.OfferType),
	}
}

func fromOfferDomain(offer *entity.Offer) *model.OfferModel {
	details := make([]*model.OfferDetailModel, 0, len(offer.Details))
	for _, detail := range offer.Details {
		details = append(details, fromOfferDetailDomain(detail))
	}

	return &model.OfferModel{
		ID:          offer.ID,
		UserID:      offer.UserID,
		Title:       offer.Title,
		Description: offer.Description,
		Image:       offer.Image,
		Details:     details,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
	}
}

func fromOfferDetailDomain(detail *entity.OfferDetail) *model.OfferDetailModel {
	return &model.OfferDetailModel{
		ID:                 detail.ID,
		OfferID:            detail.OfferID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           model.StringList(detail.Features),
		OfferType:          detail.OfferType.String(),
	}
}
