package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCompanyInput defines the data required to create a company account.
type CreateCompanyInput struct {
	Name  string
	Email string
}

// InviteMemberInput invites a user into a company with a membership role.
type InviteMemberInput struct {
	CompanyID uuid.UUID
	Email     string
	Role      entity.CompanyRole
}

// ChangeMemberRoleInput changes the role of an existing membership row.
type ChangeMemberRoleInput struct {
	CompanyID    uuid.UUID
	MembershipID uuid.UUID
	Role         entity.CompanyRole
}

// CompanyMemberView pairs a membership row with the member's user record.
type CompanyMemberView struct {
	Membership *entity.CompanyMembership
	User       *entity.User
}

// InvitationView pairs an invitation with the inviting company.
type InvitationView struct {
	Invitation *entity.CompanyInvitation
	Company    *entity.Company
}

// CompanyUsecase manages company accounts, memberships and invitations.
type CompanyUsecase interface {
	CreateCompany(ctx context.Context, principal *entity.Principal, input *CreateCompanyInput) (*entity.Company, error)
	ListMyCompanies(ctx context.Context, principal *entity.Principal) ([]*entity.Company, error)
	GetCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) (*entity.Company, error)
	DeleteCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) error

	ListMembers(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*CompanyMemberView, error)
	ChangeMemberRole(ctx context.Context, principal *entity.Principal, input *ChangeMemberRoleInput) error
	RemoveMember(ctx context.Context, principal *entity.Principal, companyID, membershipID uuid.UUID) error
	LeaveCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) error

	InviteMember(ctx context.Context, principal *entity.Principal, input *InviteMemberInput) (*entity.CompanyInvitation, error)
	ListMyInvitations(ctx context.Context, principal *entity.Principal) ([]*InvitationView, error)
	AcceptInvitation(ctx context.Context, principal *entity.Principal, invitationID uuid.UUID) error
	DeclineInvitation(ctx context.Context, principal *entity.Principal, invitationID uuid.UUID) error
	InvitationQR(ctx context.Context, principal *entity.Principal, companyID, invitationID uuid.UUID) ([]byte, error)
}
