package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyRole is the role of a member inside a company. Ownership is a
// computed concept tracked only by Company.OwnerID: the owner never has a
// membership row, and CompanyRoleOwner never goes into the database.
type CompanyRole string

const (
	CompanyRoleOwner  CompanyRole = "owner"
	CompanyRoleAdmin  CompanyRole = "admin"
	CompanyRoleMember CompanyRole = "member"
)

// IsValid checks if the CompanyRole is a storable membership role.
func (r CompanyRole) IsValid() bool {
	switch r {
	case CompanyRoleAdmin, CompanyRoleMember:
		return true
	default:
		return false
	}
}

// Company is a team account that can hold its own cart and purchase ledger.
type Company struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyMembership links a user to a company. Unique on (CompanyID, UserID).
type CompanyMembership struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Role      CompanyRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvitationStatus is the lifecycle state of a company invitation.
// PENDING is the only state from which a transition is legal.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// CompanyInvitation invites a user into a company with a given role.
// Expired pending invitations are lazily deleted on first access.
type CompanyInvitation struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	UserID    uuid.UUID
	Role      CompanyRole
	Status    InvitationStatus
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invitation is past its expiry.
func (i *CompanyInvitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
