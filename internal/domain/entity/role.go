// Package entity contains the core business objects of the project.
package entity

// Role represents the profile type a user can hold in the marketplace.
type Role string

const (
	// RoleCustomer indicates a customer profile that browses offers and places orders.
	RoleCustomer Role = "customer"
	// RoleBusiness indicates a business profile that publishes offers and receives orders.
	RoleBusiness Role = "business"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	default:
		return false
	}
}
