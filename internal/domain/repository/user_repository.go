// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user and profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user, with profile, by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user, with profile, by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, including its profile, to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity, including its profile, in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ListByRole returns every user whose profile carries the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// CountByRole returns the number of profiles carrying the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
