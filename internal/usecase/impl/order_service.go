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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateOrder snapshots the chosen tier into a new order row. The snapshot is
// complete at creation: later edits to the offer never reach the order.
func (srv *orderService) CreateOrder(ctx context.Context, principalID, offerDetailID uuid.UUID) (*usecase.OrderView, error) {
	srv.logger.Info("Creating order", "userID", principalID, "offerDetailID", offerDetailID)

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principal, err := findUser(ctx, repoFactory.UserRepo(), principalID)
		if err != nil {
			return err
		}
		if err := policy.CanCreateOrder(principal); err != nil {
			return err
		}

		offerRepo := repoFactory.OfferRepo()
		detail, err := offerRepo.FindDetailByID(ctx, offerDetailID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferDetailNotFound) {
				return errors.Wrap(domainerrors.ErrOfferDetailNotFound, "offer detail not found")
			}

			return errors.Wrap(err, "failed to find offer detail")
		}

		offer, err := offerRepo.FindByID(ctx, detail.OfferID)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrOfferWithoutOwner, "parent offer is gone")
			}

			return errors.Wrap(err, "failed to find parent offer")
		}
		if offer.UserID == uuid.Nil {
			return errors.Wrap(domainerrors.ErrOfferWithoutOwner, "offer has no owner")
		}

		order = entity.NewOrderSnapshot(detail, principalID, offer.UserID)
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	return usecase.NewOrderView(order), nil
}

// ListOrders returns every order where the principal is either party.
func (srv *orderService) ListOrders(ctx context.Context, principalID uuid.UUID) ([]*usecase.OrderView, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListForUser(ctx, principalID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, usecase.NewOrderView(order))
	}

	return views, nil
}

// GetOrder retrieves one order.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*usecase.OrderView, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return usecase.NewOrderView(order), nil
}

// UpdateOrderStatus changes the order status. The ledger deliberately imposes
// no transition restrictions beyond the party check.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, principalID, id uuid.UUID, status string) (*usecase.OrderView, error) {
	srv.logger.Info("Updating order status", "orderID", id, "userID", principalID, "status", status)

	newStatus := entity.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be one of in_progress, completed, cancelled")
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := policy.CanChangeOrderStatus(found, principalID); err != nil {
			return err
		}

		found.Status = newStatus
		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return usecase.NewOrderView(order), nil
}

// DeleteOrder removes an order. Neither party may delete their own orders;
// only administrative accounts pass the policy check.
func (srv *orderService) DeleteOrder(ctx context.Context, principalID, id uuid.UUID) error {
	srv.logger.Info("Deleting order", "orderID", id, "userID", principalID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		principal, err := findUser(ctx, repoFactory.UserRepo(), principalID)
		if err != nil {
			return err
		}
		if err := policy.RequireAdmin(principal); err != nil {
			return err
		}

		orderRepo := repoFactory.OrderRepo()
		if _, err := orderRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if err := orderRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// CountOrders counts a business user's orders in the given status. The id must
// belong to a business profile, otherwise the caller gets a not-found error
// naming the business user.
func (srv *orderService) CountOrders(ctx context.Context, businessUserID uuid.UUID, status entity.OrderStatus) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, businessUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Role() != entity.RoleBusiness {
			return errors.Wrap(domainerrors.ErrBusinessUserNotFound, "profile is not business")
		}

		found, err := repoFactory.OrderRepo().CountByBusinessAndStatus(ctx, businessUserID, status)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}
