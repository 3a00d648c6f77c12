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

func TestProfileService_GetProfile(t *testing.T) {
	t.Parallel()

	t.Run("returns the profile view", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		userID := uuid.New()
		user := businessUser(userID)
		user.Profile.Location = "Berlin"
		m.users.On("FindByID", mock.Anything, userID).Return(user, nil)

		view, err := srv.GetProfile(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, view.User)
		assert.Equal(t, "business", view.Type)
		assert.Equal(t, "Berlin", view.Location)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		userID := uuid.New()
		m.users.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := srv.GetProfile(context.Background(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("user without profile is not found", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		userID := uuid.New()
		m.users.On("FindByID", mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

		_, err := srv.GetProfile(context.Background(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("patches only the provided fields", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		user := businessUser(userID)
		user.Profile.Location = "Berlin"
		user.Profile.Tel = "030 1234"
		m.users.On("FindByID", mock.Anything, userID).Return(user, nil)
		m.users.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Profile.Location == "Hamburg" && u.Profile.Tel == "030 1234" &&
				u.Profile.Type == entity.RoleBusiness
		})).Return(nil)

		view, err := srv.UpdateProfile(context.Background(), userID, userID, &usecase.UpdateProfileInput{
			Location: strPtr("Hamburg"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Hamburg", view.Location)
		assert.Equal(t, "030 1234", view.Tel)
	})

	t.Run("rejects other principals", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		_, err := srv.UpdateProfile(context.Background(), uuid.New(), userID, &usecase.UpdateProfileInput{
			Location: strPtr("Hamburg"),
		})

		assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	})
}

func TestProfileService_ListByRole(t *testing.T) {
	t.Parallel()

	t.Run("lists profiles for a role", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		m.users.On("ListByRole", mock.Anything, entity.RoleCustomer).Return([]*entity.User{
			customerUser(uuid.New()),
			customerUser(uuid.New()),
		}, nil)

		views, err := srv.ListByRole(context.Background(), entity.RoleCustomer)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "customer", views[0].Type)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewProfileService(m.txm, m.logger)

		_, err := srv.ListByRole(context.Background(), entity.Role("moderator"))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
