package service

import (
	"github.com/google/uuid"

	"market/internal/domain/entity"
)

// Claims carries the authenticated principal extracted from an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role // Empty when the account has no profile.
	Admin  bool
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed token for the given principal.
	GenerateAccessToken(userID uuid.UUID, role entity.Role, admin bool) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
