package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates the account, its role-carrying profile and the email
// credential as one atomic unit, then issues an access token.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", "email", input.Email, "type", input.Type)

	if !strings.Contains(strings.TrimSpace(input.Username), " ") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("the name must contain a first and last name, separated by a space")
	}
	if input.Password != input.RepeatedPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	role := entity.Role(input.Type)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("type must be customer or business")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email: input.Email,
		Name:  strings.TrimSpace(input.Username),
		Profile: &entity.Profile{
			Type: role,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		auth := &entity.Authentication{
			UserID:       user.ID,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := repoFactory.AuthRepo().CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, role, user.Admin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{
		Token:    token,
		Username: user.Name,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}

// Login verifies the email credential and issues an access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Login attempt", "email", input.Email)

	var user *entity.User
	var hash string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auth, err := repoFactory.AuthRepo().FindAuthenticationByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find credential")
		}
		hash = auth.PasswordHash

		found, err := repoFactory.UserRepo().FindByID(ctx, auth.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for credential")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	if !srv.hasher.Check(input.Password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role(), user.Admin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{
		Token:    token,
		Username: user.Name,
		Email:    user.Email,
		UserID:   user.ID,
	}, nil
}
