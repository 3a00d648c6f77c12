// Package impl contains the application-specific business rules implementations.
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

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OfferUsecase {
	return &offerService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListOffers returns one catalog page with derived aggregates. It is a pure
// read open to unauthenticated callers.
func (srv *offerService) ListOffers(ctx context.Context, input *usecase.OfferListInput) (*usecase.OfferPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = usecase.DefaultPageSize
	}
	if pageSize > usecase.MaxPageSize {
		pageSize = usecase.MaxPageSize
	}

	ordering, err := normalizeOfferOrdering(input.Ordering)
	if err != nil {
		return nil, err
	}

	query := repository.OfferListQuery{
		CreatorID:       input.CreatorID,
		MinPrice:        input.MinPrice,
		MaxDeliveryTime: input.MaxDeliveryTime,
		Search:          input.Search,
		Ordering:        ordering,
		Offset:          (page - 1) * pageSize,
		Limit:           pageSize,
	}

	var offers []*entity.Offer
	var total int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.OfferRepo().List(ctx, query)
		if err != nil {
			return errors.Wrap(err, "failed to list offers")
		}
		offers = found
		total = count

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	results := make([]*usecase.OfferView, 0, len(offers))
	for _, offer := range offers {
		results = append(results, usecase.NewOfferView(offer))
	}

	return &usecase.OfferPage{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}, nil
}

// CreateOffer validates the three-tier payload and persists the offer with its
// details as one atomic unit.
func (srv *offerService) CreateOffer(ctx context.Context, principalID uuid.UUID, input *usecase.CreateOfferInput) (*usecase.OfferView, error) {
	srv.logger.Info("Creating offer", "userID", principalID, "title", input.Title)

	details, err := buildOfferDetails(input.Details)
	if err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		UserID:      principalID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Details:     details,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principal, err := findUser(ctx, repoFactory.UserRepo(), principalID)
		if err != nil {
			return err
		}
		if err := policy.CanCreateOffer(principal); err != nil {
			return err
		}

		if err := repoFactory.OfferRepo().Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return usecase.NewOfferView(offer), nil
}

// GetOffer retrieves one offer with its details and aggregates.
func (srv *offerService) GetOffer(ctx context.Context, id uuid.UUID) (*usecase.OfferView, error) {
	var offer *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OfferRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}
		offer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer")
	}

	return usecase.NewOfferView(offer), nil
}

// GetOfferDetail retrieves a single tier row.
func (srv *offerService) GetOfferDetail(ctx context.Context, id uuid.UUID) (*usecase.OfferDetailView, error) {
	var detail *entity.OfferDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OfferRepo().FindDetailByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrOfferDetailNotFound, "offer detail not found")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}
		detail = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get offer detail")
	}

	return usecase.NewOfferDetailView(detail), nil
}

// UpdateOffer applies a partial update. Detail entries are matched against the
// existing tiers by offer_type; a tier row is only created when the offer is
// somehow missing that tier, so the three-tier invariant cannot be exceeded.
func (srv *offerService) UpdateOffer(ctx context.Context, principalID, id uuid.UUID, input *usecase.UpdateOfferInput) (*usecase.OfferView, error) {
	srv.logger.Info("Updating offer", "offerID", id, "userID", principalID)

	if err := validateDetailPatches(input.Details); err != nil {
		return nil, err
	}

	var offer *entity.Offer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		found, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if err := policy.RequireOwner(found.UserID, principalID); err != nil {
			return err
		}

		applyOfferPatch(found, input)

		if err := offerRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		offer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	return usecase.NewOfferView(offer), nil
}

// DeleteOffer removes the offer with its details. Existing orders keep their
// snapshots and are untouched.
func (srv *offerService) DeleteOffer(ctx context.Context, principalID, id uuid.UUID) error {
	srv.logger.Info("Deleting offer", "offerID", id, "userID", principalID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if err := policy.RequireOwner(offer.UserID, principalID); err != nil {
			return err
		}

		if err := offerRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete offer")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}

// buildOfferDetails validates a create payload down to entity details. The
// payload must hold exactly one complete detail per tier.
func buildOfferDetails(inputs []usecase.OfferDetailInput) ([]*entity.OfferDetail, error) {
	if len(inputs) != 3 {
		return nil, domainerrors.ErrDetailCount
	}

	seen := make(map[entity.TierType]bool, 3)
	details := make([]*entity.OfferDetail, 0, 3)
	for _, in := range inputs {
		if in.OfferType == "" {
			return nil, domainerrors.ErrTierRequired
		}
		tier := entity.TierType(in.OfferType)
		if !tier.IsValid() {
			return nil, domainerrors.NewInvalidTierError(in.OfferType)
		}
		if seen[tier] {
			return nil, domainerrors.NewDuplicateTierError(in.OfferType)
		}
		seen[tier] = true

		detail, err := completeDetail(in, tier)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if len(seen) != 3 {
		return nil, domainerrors.ErrTierSet
	}

	return details, nil
}

// completeDetail requires every tier field to be present and in range.
func completeDetail(in usecase.OfferDetailInput, tier entity.TierType) (*entity.OfferDetail, error) {
	if in.Title == nil || in.Revisions == nil || in.DeliveryTimeInDays == nil || in.Price == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("every detail requires title, revisions, delivery_time_in_days and price")
	}
	if *in.DeliveryTimeInDays <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("delivery_time_in_days must be greater than 0")
	}
	if in.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if *in.Revisions < entity.UnlimitedRevisions {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("revisions must be -1 (unlimited) or greater")
	}

	features := in.Features
	if features == nil {
		features = []string{}
	}

	return &entity.OfferDetail{
		Title:              *in.Title,
		Revisions:          *in.Revisions,
		DeliveryTimeInDays: *in.DeliveryTimeInDays,
		Price:              *in.Price,
		Features:           features,
		OfferType:          tier,
	}, nil
}

// validateDetailPatches checks the tier tags of an update payload before any
// row is touched: every entry must name a valid tier, and no tier may appear
// twice in one payload.
func validateDetailPatches(inputs []usecase.OfferDetailInput) error {
	seen := make(map[entity.TierType]bool, len(inputs))
	for _, in := range inputs {
		if in.OfferType == "" {
			return domainerrors.ErrTierRequired
		}
		tier := entity.TierType(in.OfferType)
		if !tier.IsValid() {
			return domainerrors.NewInvalidTierError(in.OfferType)
		}
		if seen[tier] {
			return domainerrors.NewDuplicateTierError(in.OfferType)
		}
		seen[tier] = true
	}

	return nil
}

// applyOfferPatch overwrites only the provided fields, patching details by
// tier match. validateDetailPatches must have accepted the payload already.
func applyOfferPatch(offer *entity.Offer, input *usecase.UpdateOfferInput) {
	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}
	if input.Image != nil {
		offer.Image = *input.Image
	}

	for _, in := range input.Details {
		tier := entity.TierType(in.OfferType)
		existing := offer.DetailByTier(tier)
		if existing == nil {
			// Only reachable when the stored offer somehow lost a tier;
			// recreate it from the patch instead of failing the update.
			existing = &entity.OfferDetail{OfferID: offer.ID, OfferType: tier, Features: []string{}}
			offer.Details = append(offer.Details, existing)
		}
		if in.Title != nil {
			existing.Title = *in.Title
		}
		if in.Revisions != nil {
			existing.Revisions = *in.Revisions
		}
		if in.DeliveryTimeInDays != nil {
			existing.DeliveryTimeInDays = *in.DeliveryTimeInDays
		}
		if in.Price != nil {
			existing.Price = *in.Price
		}
		if in.Features != nil {
			existing.Features = in.Features
		}
	}
}

// normalizeOfferOrdering validates client ordering input against the allowed
// sort keys, defaulting to newest-updated first.
func normalizeOfferOrdering(ordering string) (string, error) {
	switch ordering {
	case "":
		return repository.OfferOrderUpdatedAtDesc, nil
	case repository.OfferOrderUpdatedAtAsc, repository.OfferOrderUpdatedAtDesc,
		repository.OfferOrderMinPriceAsc, repository.OfferOrderMinPriceDesc:
		return ordering, nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("ordering must be one of updated_at, -updated_at, min_price, -min_price")
	}
}
