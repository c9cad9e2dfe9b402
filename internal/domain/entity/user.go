// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record behind every storefront account.
// Authentication methods (password, Google) live in Authentication rows;
// the platform role lives directly on the user.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	Name      string    // The user's display name.
	Role      Role      // Platform role: user or admin.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Principal is the resolved identity making a request. A nil *Principal
// means the request is anonymous; it is never persisted.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// IsAdmin reports whether the principal carries the platform admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// PrincipalFromUser builds the request-scoped principal for a stored user.
func PrincipalFromUser(user *User) *Principal {
	if user == nil {
		return nil
	}

	return &Principal{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
