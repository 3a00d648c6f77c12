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
	"market/internal/mocks"
	"market/internal/usecase"
)

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:         "Max Mustermann",
		Email:            "max@example.com",
		Password:         "s3cretpass",
		RepeatedPassword: "s3cretpass",
		Type:             "customer",
	}
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates account, profile and credential", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokens := mocks.NewMockTokenService(t)
		srv := NewUserService(m.txm, hasher, tokens, m.logger)

		hasher.On("Hash", "s3cretpass").Return("hashed", nil)
		m.users.On("FindByEmail", mock.Anything, "max@example.com").Return(nil, repository.ErrUserNotFound)
		m.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "max@example.com" && u.Name == "Max Mustermann" &&
				u.HasProfile() && u.Profile.Type == entity.RoleCustomer
		})).Return(nil)
		m.auths.On("CreateAuthentication", mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.Email == "max@example.com" && a.PasswordHash == "hashed"
		})).Return(nil)
		tokens.On("GenerateAccessToken", mock.Anything, entity.RoleCustomer, false).Return("token123", nil)

		out, err := srv.Register(context.Background(), validRegisterInput())

		require.NoError(t, err)
		assert.Equal(t, "token123", out.Token)
		assert.Equal(t, "Max Mustermann", out.Username)
		assert.Equal(t, "max@example.com", out.Email)
	})

	t.Run("rejects a single-word name", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewUserService(m.txm, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenService(t), m.logger)

		input := validRegisterInput()
		input.Username = "Max"

		_, err := srv.Register(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewUserService(m.txm, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenService(t), m.logger)

		input := validRegisterInput()
		input.RepeatedPassword = "different"

		_, err := srv.Register(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		hasher := mocks.NewMockPasswordHasher(t)
		srv := NewUserService(m.txm, hasher, mocks.NewMockTokenService(t), m.logger)

		hasher.On("Hash", "s3cretpass").Return("hashed", nil)
		m.users.On("FindByEmail", mock.Anything, "max@example.com").
			Return(customerUser(uuid.New()), nil)

		_, err := srv.Register(context.Background(), validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	})

	t.Run("rejects an unknown profile type", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewUserService(m.txm, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenService(t), m.logger)

		input := validRegisterInput()
		input.Type = "vendor"

		_, err := srv.Register(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		hasher := mocks.NewMockPasswordHasher(t)
		tokens := mocks.NewMockTokenService(t)
		srv := NewUserService(m.txm, hasher, tokens, m.logger)

		m.auths.On("FindAuthenticationByEmail", mock.Anything, "cust@example.com").Return(&entity.Authentication{
			UserID:       userID,
			Email:        "cust@example.com",
			PasswordHash: "hashed",
		}, nil)
		m.users.On("FindByID", mock.Anything, userID).Return(customerUser(userID), nil)
		hasher.On("Check", "s3cretpass", "hashed").Return(true)
		tokens.On("GenerateAccessToken", userID, entity.RoleCustomer, false).Return("token123", nil)

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "cust@example.com",
			Password: "s3cretpass",
		})

		require.NoError(t, err)
		assert.Equal(t, "token123", out.Token)
		assert.Equal(t, userID, out.UserID)
	})

	t.Run("unknown email is invalid credentials", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		srv := NewUserService(m.txm, mocks.NewMockPasswordHasher(t), mocks.NewMockTokenService(t), m.logger)

		m.auths.On("FindAuthenticationByEmail", mock.Anything, "nobody@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		t.Parallel()

		m := newTestMocks(t)
		hasher := mocks.NewMockPasswordHasher(t)
		srv := NewUserService(m.txm, hasher, mocks.NewMockTokenService(t), m.logger)

		m.auths.On("FindAuthenticationByEmail", mock.Anything, "cust@example.com").Return(&entity.Authentication{
			UserID:       userID,
			PasswordHash: "hashed",
		}, nil)
		m.users.On("FindByID", mock.Anything, userID).Return(customerUser(userID), nil)
		hasher.On("Check", "wrong", "hashed").Return(false)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "cust@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
