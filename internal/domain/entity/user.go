// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It carries only identity information; role-specific data lives on the Profile.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // The user's display name ("First Last").
	Admin     bool      // Administrative accounts may delete orders; nobody else can.
	Profile   *Profile  // The role-carrying profile. Nil until registration completes.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Role returns the role recorded on the user's profile, or an empty Role
// when the user has no profile at all. Callers that need to distinguish
// "no profile" from "wrong role" must check HasProfile first.
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}

	return u.Profile.Type
}

// HasProfile reports whether the user has completed registration with a profile.
func (u *User) HasProfile() bool {
	return u.Profile != nil
}

// Profile holds the role and contact attributes attached to exactly one User.
// The Type is fixed at registration and never changes afterwards.
type Profile struct {
	UserID       uuid.UUID // Foreign key linking this profile to its User.
	Type         Role      // customer or business; immutable after creation.
	Location     string    // Free-form location string.
	Tel          string    // Contact telephone number.
	Description  string    // Self description shown on the public profile.
	WorkingHours string    // Free-form working hours string.
	File         string    // Opaque avatar reference assigned by the storage collaborator.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
