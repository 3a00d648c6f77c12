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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetProfile retrieves the profile view for the given user id. A user without
// a profile row is reported as not found: the directory only knows principals
// that completed registration.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	srv.logger.Debug("Getting profile", "userID", userID)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findUser(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}
		if !found.HasProfile() {
			return errors.Wrap(domainerrors.ErrNotFound, "user has no profile")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return usecase.NewProfileView(user), nil
}

// UpdateProfile applies a partial update to the principal's own profile.
// The role is immutable and not part of the input.
func (srv *profileService) UpdateProfile(ctx context.Context, principalID, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	srv.logger.Info("Updating profile", "userID", userID)

	if err := policy.RequireOwner(userID, principalID); err != nil {
		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}
		if !found.HasProfile() {
			return errors.Wrap(domainerrors.ErrNotFound, "user has no profile")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Location != nil {
			found.Profile.Location = *input.Location
		}
		if input.Tel != nil {
			found.Profile.Tel = *input.Tel
		}
		if input.Description != nil {
			found.Profile.Description = *input.Description
		}
		if input.WorkingHours != nil {
			found.Profile.WorkingHours = *input.WorkingHours
		}
		if input.File != nil {
			found.Profile.File = *input.File
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return usecase.NewProfileView(user), nil
}

// ListByRole returns every profile carrying the given role.
func (srv *profileService) ListByRole(ctx context.Context, role entity.Role) ([]*usecase.ProfileView, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be customer or business")
	}

	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().ListByRole(ctx, role)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	views := make([]*usecase.ProfileView, 0, len(users))
	for _, user := range users {
		views = append(views, usecase.NewProfileView(user))
	}

	return views, nil
}
