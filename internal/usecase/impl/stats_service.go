package impl

import (
	"context"
	"log/slog"
	"math"

	"github.com/pkg/errors"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/usecase"
)

// statsService implements the StatsUsecase interface. It owns no state of its
// own; every number is derived from the other components' tables.
type statsService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.StatsUsecase {
	return &statsService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetStats assembles the four platform aggregates inside one transaction so
// the numbers are mutually consistent. An empty platform yields all zeros;
// a storage fault is logged and surfaced as a tagged internal error rather
// than leaking the underlying failure.
func (srv *statsService) GetStats(ctx context.Context) (*usecase.StatsView, error) {
	var stats usecase.StatsView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		reviewCount, err := reviewRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count reviews")
		}

		averageRating := 0.0
		if reviewCount > 0 {
			averageRating, err = reviewRepo.AverageRating(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to average ratings")
			}
		}

		businessCount, err := repoFactory.UserRepo().CountByRole(ctx, entity.RoleBusiness)
		if err != nil {
			return errors.Wrap(err, "failed to count business profiles")
		}

		offerCount, err := repoFactory.OfferRepo().Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count offers")
		}

		stats = usecase.StatsView{
			ReviewCount:          reviewCount,
			AverageRating:        roundToOneDecimal(averageRating),
			BusinessProfileCount: businessCount,
			OfferCount:           offerCount,
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("failed to aggregate platform stats", "error", err)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to aggregate platform stats")
	}

	return &stats, nil
}

// roundToOneDecimal also normalizes any NaN/Inf a broken aggregation might
// produce back to zero, keeping the contract that the average is finite.
func roundToOneDecimal(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0.0
	}

	return math.Round(value*10) / 10
}
