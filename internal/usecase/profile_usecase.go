package usecase

import (
	"context"

	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// ProfileUsecase defines the interface for the identity and role directory.
type ProfileUsecase interface {
	// GetProfile returns the profile view for the given user id.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)

	// UpdateProfile applies a partial update; only the owning principal may call it.
	UpdateProfile(ctx context.Context, principalID, userID uuid.UUID, input *UpdateProfileInput) (*ProfileView, error)

	// ListByRole returns every profile carrying the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*ProfileView, error)
}

// UpdateProfileInput defines a partial profile update. Nil fields are untouched;
// the role is immutable and deliberately absent.
type UpdateProfileInput struct {
	Name         *string `json:"username,omitempty"`
	Location     *string `json:"location,omitempty"`
	Tel          *string `json:"tel,omitempty"`
	Description  *string `json:"description,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
	File         *string `json:"file,omitempty"`
}
