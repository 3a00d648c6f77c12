package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"market/internal/delivery/http/router/handler"
	"market/internal/mocks"
	"market/internal/usecase"
)

func TestUserHandler_Register(t *testing.T) {
	t.Run("registers a valid account", func(t *testing.T) {
		userUC := mocks.NewMockUserUsecase(t)
		h := handler.NewUserHandler(userUC, discardLogger())

		userUC.On("Register", mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "max@example.com" && in.Type == "customer"
		})).Return(&usecase.AuthOutput{Token: "token123", Email: "max@example.com", UserID: uuid.New()}, nil)

		body := `{"username":"Max Muster","email":"max@example.com","password":"strongpass","repeated_password":"strongpass","type":"customer"}`
		c, rec := newRequestContext(http.MethodPost, "/api/registration/", body)

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects malformed payloads before any work", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"null body", `null`},
			{"missing email", `{"username":"Max Muster","password":"strongpass","repeated_password":"strongpass","type":"customer"}`},
			{"invalid email", `{"username":"Max Muster","email":"not-an-email","password":"strongpass","repeated_password":"strongpass","type":"customer"}`},
			{"short password", `{"username":"Max Muster","email":"max@example.com","password":"x","repeated_password":"x","type":"customer"}`},
			{"unknown profile type", `{"username":"Max Muster","email":"max@example.com","password":"strongpass","repeated_password":"strongpass","type":"vendor"}`},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				userUC := mocks.NewMockUserUsecase(t)
				h := handler.NewUserHandler(userUC, discardLogger())

				c, rec := newRequestContext(http.MethodPost, "/api/registration/", tc.body)

				require.NoError(t, h.Register(c))
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			})
		}
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("rejects a body without a password", func(t *testing.T) {
		userUC := mocks.NewMockUserUsecase(t)
		h := handler.NewUserHandler(userUC, discardLogger())

		c, rec := newRequestContext(http.MethodPost, "/api/login/", `{"email":"max@example.com"}`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a null body", func(t *testing.T) {
		userUC := mocks.NewMockUserUsecase(t)
		h := handler.NewUserHandler(userUC, discardLogger())

		c, rec := newRequestContext(http.MethodPost, "/api/login/", `null`)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
