package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCompanyNotFound is returned when a company does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrMembershipNotFound is returned when a membership row does not exist.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrDuplicateMembership is returned when the (company, user) pair already
	// has a membership row.
	ErrDuplicateMembership = errors.New("membership already exists")
)

// CompanyRepository defines the persistence operations for company accounts
// and their memberships.
type CompanyRepository interface {
	// CreateCompany persists a new company.
	CreateCompany(ctx context.Context, company *entity.Company) error

	// FindCompanyByID retrieves a single company.
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// ListCompaniesByUser returns the companies a user owns or belongs to.
	ListCompaniesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Company, error)

	// DeleteCompany removes the company together with its memberships,
	// invitations and shared cart.
	DeleteCompany(ctx context.Context, id uuid.UUID) error

	// CreateMembership persists a new membership row. A duplicate
	// (company, user) pair yields ErrDuplicateMembership.
	CreateMembership(ctx context.Context, membership *entity.CompanyMembership) error

	// FindMembership retrieves the membership of a user in a company.
	FindMembership(ctx context.Context, companyID, userID uuid.UUID) (*entity.CompanyMembership, error)

	// FindMembershipByID retrieves a membership row by its own id.
	FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.CompanyMembership, error)

	// ListMemberships returns every membership of a company, oldest first.
	ListMemberships(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyMembership, error)

	// UpdateMembershipRole changes the role of a membership row.
	UpdateMembershipRole(ctx context.Context, id uuid.UUID, role entity.CompanyRole) error

	// DeleteMembership removes a membership row.
	DeleteMembership(ctx context.Context, id uuid.UUID) error
}

// ErrInvitationNotFound is returned when an invitation does not exist.
var ErrInvitationNotFound = errors.New("invitation not found")

// InvitationRepository defines the persistence operations for company
// membership invitations.
type InvitationRepository interface {
	// CreateInvitation persists a new invitation.
	CreateInvitation(ctx context.Context, invitation *entity.CompanyInvitation) error

	// FindInvitationByID retrieves a single invitation.
	FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.CompanyInvitation, error)

	// ListPendingByInvitee returns the pending invitations addressed to a user.
	ListPendingByInvitee(ctx context.Context, userID uuid.UUID) ([]*entity.CompanyInvitation, error)

	// ListByCompany returns every invitation of a company, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyInvitation, error)

	// UpdateInvitationStatus moves an invitation out of the pending state.
	UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error

	// DeleteInvitation removes an invitation row, used for lazy expiry.
	DeleteInvitation(ctx context.Context, id uuid.UUID) error
}
