package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication represents a user's email/password credential. Token issuance
// beyond a single access token per login is handled by external collaborators.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Email        string    // The login identifier, matching the user's email.
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time
}
