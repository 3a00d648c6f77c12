// Package policy contains the cross-cutting authorization predicates shared by
// the catalog, ledger and registry usecases. Every predicate is a pure function
// from an already-resolved principal to either nil or a domain error, evaluated
// before any persistence write.
package policy

import (
	"github.com/google/uuid"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
)

// RequireRole checks that the principal carries a profile with the wanted role.
// A missing profile yields ErrNoProfile so callers surface "no profile found"
// instead of the role-specific message.
func RequireRole(user *entity.User, role entity.Role, wrongRole domainerrors.AppError) error {
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !user.HasProfile() {
		return domainerrors.ErrNoProfile
	}
	if user.Role() != role {
		return wrongRole
	}

	return nil
}

// CanCreateOffer gates offer creation to business profiles.
func CanCreateOffer(user *entity.User) error {
	return RequireRole(user, entity.RoleBusiness, domainerrors.ErrNotBusinessOffer)
}

// CanCreateOrder gates order creation to customer profiles.
func CanCreateOrder(user *entity.User) error {
	return RequireRole(user, entity.RoleCustomer, domainerrors.ErrNotCustomerOrder)
}

// CanCreateReview gates review creation to customer profiles.
func CanCreateReview(user *entity.User) error {
	return RequireRole(user, entity.RoleCustomer, domainerrors.ErrNotCustomerReview)
}

// RequireOwner checks that the principal owns the resource.
func RequireOwner(ownerID, principalID uuid.UUID) error {
	if ownerID != principalID {
		return domainerrors.ErrNotOwner
	}

	return nil
}

// CanChangeOrderStatus allows only the business party recorded on the order.
func CanChangeOrderStatus(order *entity.Order, principalID uuid.UUID) error {
	if order.BusinessUserID != principalID {
		return domainerrors.ErrNotOrderBusiness
	}

	return nil
}

// RequireAdmin allows only administrative accounts.
func RequireAdmin(user *entity.User) error {
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !user.Admin {
		return domainerrors.ErrAdminOnly
	}

	return nil
}
