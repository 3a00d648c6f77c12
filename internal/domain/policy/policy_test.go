package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
)

func userWithRole(role entity.Role) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:      id,
		Profile: &entity.Profile{UserID: id, Type: role},
	}
}

func TestCanCreateOffer(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CanCreateOffer(userWithRole(entity.RoleBusiness)))
	assert.ErrorIs(t, CanCreateOffer(userWithRole(entity.RoleCustomer)), domainerrors.ErrNotBusinessOffer)
	assert.ErrorIs(t, CanCreateOffer(&entity.User{ID: uuid.New()}), domainerrors.ErrNoProfile)
	assert.ErrorIs(t, CanCreateOffer(nil), domainerrors.ErrUnauthenticated)
}

func TestCanCreateOrder(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CanCreateOrder(userWithRole(entity.RoleCustomer)))
	assert.ErrorIs(t, CanCreateOrder(userWithRole(entity.RoleBusiness)), domainerrors.ErrNotCustomerOrder)
	assert.ErrorIs(t, CanCreateOrder(&entity.User{ID: uuid.New()}), domainerrors.ErrNoProfile)
}

func TestCanCreateReview(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CanCreateReview(userWithRole(entity.RoleCustomer)))
	assert.ErrorIs(t, CanCreateReview(userWithRole(entity.RoleBusiness)), domainerrors.ErrNotCustomerReview)
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	assert.NoError(t, RequireOwner(id, id))
	assert.ErrorIs(t, RequireOwner(id, uuid.New()), domainerrors.ErrNotOwner)
}

func TestCanChangeOrderStatus(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	order := &entity.Order{BusinessUserID: businessID, CustomerUserID: uuid.New()}

	assert.NoError(t, CanChangeOrderStatus(order, businessID))
	assert.ErrorIs(t, CanChangeOrderStatus(order, order.CustomerUserID), domainerrors.ErrNotOrderBusiness)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	admin := userWithRole(entity.RoleCustomer)
	admin.Admin = true

	assert.NoError(t, RequireAdmin(admin))
	assert.ErrorIs(t, RequireAdmin(userWithRole(entity.RoleBusiness)), domainerrors.ErrAdminOnly)
	assert.ErrorIs(t, RequireAdmin(nil), domainerrors.ErrUnauthenticated)
}
