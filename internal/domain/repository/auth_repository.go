package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
)

// ErrAuthNotFound is returned when a credential record is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository defines the standard operations for credential persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new email/password credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByEmail retrieves a credential by its login email.
	FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error)
}
