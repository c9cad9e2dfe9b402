// Package entity contains the core business objects of the project.
package entity

// Role represents the platform-level role of a user.
type Role string

const (
	// RoleUser indicates a regular storefront customer.
	RoleUser Role = "user"
	// RoleAdmin indicates a platform administrator with back-office access.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, defaulting to RoleUser
// for anything unrecognized.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
