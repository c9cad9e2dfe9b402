package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInvitationTTL = 7 * 24 * time.Hour

// companyService implements the CompanyUsecase interface.
type companyService struct {
	txManager      repository.TransactionManager
	companyRepo    repository.CompanyRepository
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	qrcodeService  service.QRCodeService
	guard          *authz.Guard
	invitationTTL  time.Duration
	logger         *slog.Logger
}

// CompanyServiceParams holds dependencies for companyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CompanyRepo    repository.CompanyRepository
	InvitationRepo repository.InvitationRepository
	UserRepo       repository.UserRepository
	QRCodeService  service.QRCodeService
	Guard          *authz.Guard
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	invitationTTL := defaultInvitationTTL
	if params.Config != nil && params.Config.Invitation != nil && params.Config.Invitation.TTL > 0 {
		invitationTTL = params.Config.Invitation.TTL
	}

	return &companyService{
		txManager:      params.TxManager,
		companyRepo:    params.CompanyRepo,
		invitationRepo: params.InvitationRepo,
		userRepo:       params.UserRepo,
		qrcodeService:  params.QRCodeService,
		guard:          params.Guard,
		invitationTTL:  invitationTTL,
		logger:         params.Logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCompany creates a company owned by the caller. Ownership lives only
// on the company row; the owner never gets a membership row.
func (srv *companyService) CreateCompany(ctx context.Context, principal *entity.Principal, input *usecase.CreateCompanyInput) (*entity.Company, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	company := &entity.Company{
		ID:      uuid.New(),
		Name:    input.Name,
		OwnerID: principal.ID,
		Email:   input.Email,
	}
	if err := srv.companyRepo.CreateCompany(ctx, company); err != nil {
		return nil, errors.Wrap(err, "failed to create company")
	}

	srv.log(ctx).Info("Company created", slog.String("companyID", company.ID.String()))

	return company, nil
}

// ListMyCompanies returns the companies the caller owns or belongs to.
func (srv *companyService) ListMyCompanies(ctx context.Context, principal *entity.Principal) ([]*entity.Company, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	companies, err := srv.companyRepo.ListCompaniesByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

// GetCompany returns a single company the caller may see.
func (srv *companyService) GetCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) (*entity.Company, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	company, membership, err := srv.loadCompanyContext(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}

	decision := srv.guard.Authorize(principal, authz.ActionViewCompany, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany removes the company with its memberships, invitations and
// shared cart.
func (srv *companyService) DeleteCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	company, membership, err := srv.loadCompanyContext(ctx, principal, companyID)
	if err != nil {
		return err
	}

	decision := srv.guard.Authorize(principal, authz.ActionDeleteCompany, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return err
	}

	if err := srv.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		return errors.Wrap(err, "failed to delete company")
	}

	srv.log(ctx).Info("Company deleted", slog.String("companyID", companyID.String()))

	return nil
}

// ListMembers returns every membership of a company with its user record.
func (srv *companyService) ListMembers(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) ([]*usecase.CompanyMemberView, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	company, membership, err := srv.loadCompanyContext(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}

	decision := srv.guard.Authorize(principal, authz.ActionViewCompany, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	memberships, err := srv.companyRepo.ListMemberships(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	views := make([]*usecase.CompanyMemberView, 0, len(memberships))
	for _, m := range memberships {
		user, err := srv.userRepo.FindByID(ctx, m.UserID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load member user")
		}
		views = append(views, &usecase.CompanyMemberView{Membership: m, User: user})
	}

	return views, nil
}

// ChangeMemberRole changes a membership row's role. The owner has no
// membership row; any attempt aimed at the owner is denied by the guard
// before role checks apply.
func (srv *companyService) ChangeMemberRole(ctx context.Context, principal *entity.Principal, input *usecase.ChangeMemberRoleInput) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !input.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("role must be admin or member")
	}

	target, err := srv.authorizeMemberMutation(ctx, principal, input.CompanyID, input.MembershipID, authz.ActionChangeMemberRole)
	if err != nil {
		return err
	}

	if err := srv.companyRepo.UpdateMembershipRole(ctx, target.ID, input.Role); err != nil {
		return errors.Wrap(err, "failed to update membership role")
	}

	srv.log(ctx).Info("Membership role changed",
		slog.String("membershipID", target.ID.String()),
		slog.Any("role", input.Role))

	return nil
}

// RemoveMember deletes a membership row.
func (srv *companyService) RemoveMember(ctx context.Context, principal *entity.Principal, companyID, membershipID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	target, err := srv.authorizeMemberMutation(ctx, principal, companyID, membershipID, authz.ActionRemoveMember)
	if err != nil {
		return err
	}

	if err := srv.companyRepo.DeleteMembership(ctx, target.ID); err != nil {
		return errors.Wrap(err, "failed to delete membership")
	}

	return nil
}

// LeaveCompany removes the caller's own membership row. The owner has no
// row to remove and therefore cannot leave the company this way.
func (srv *companyService) LeaveCompany(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	decision := srv.guard.Authorize(principal, authz.ActionLeaveCompany, authz.Resource{TargetUserID: principal.ID})
	if err := decision.Err(); err != nil {
		return err
	}

	membership, err := srv.companyRepo.FindMembership(ctx, companyID, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return domainerrors.ErrMembershipNotFound
		}

		return errors.Wrap(err, "failed to find membership")
	}

	if err := srv.companyRepo.DeleteMembership(ctx, membership.ID); err != nil {
		return errors.Wrap(err, "failed to delete membership")
	}

	return nil
}

// InviteMember invites an existing user into the company by email.
func (srv *companyService) InviteMember(ctx context.Context, principal *entity.Principal, input *usecase.InviteMemberInput) (*entity.CompanyInvitation, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be admin or member")
	}

	company, membership, err := srv.loadCompanyContext(ctx, principal, input.CompanyID)
	if err != nil {
		return nil, err
	}

	decision := srv.guard.Authorize(principal, authz.ActionInviteMember, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	invitee, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitee")
	}

	if invitee.ID == company.OwnerID {
		return nil, domainerrors.ErrDuplicateMembership.WithDetails("user owns this company")
	}
	if _, err := srv.companyRepo.FindMembership(ctx, input.CompanyID, invitee.ID); err == nil {
		return nil, domainerrors.ErrDuplicateMembership
	} else if !errors.Is(err, repository.ErrMembershipNotFound) {
		return nil, errors.Wrap(err, "failed to check membership")
	}

	invitation := &entity.CompanyInvitation{
		ID:        uuid.New(),
		CompanyID: input.CompanyID,
		UserID:    invitee.ID,
		Role:      input.Role,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(srv.invitationTTL),
	}
	if err := srv.invitationRepo.CreateInvitation(ctx, invitation); err != nil {
		return nil, errors.Wrap(err, "failed to create invitation")
	}

	srv.log(ctx).Info("Invitation created",
		slog.String("invitationID", invitation.ID.String()),
		slog.String("companyID", input.CompanyID.String()))

	return invitation, nil
}

// ListMyInvitations returns the caller's pending invitations. Expired rows
// found along the way are deleted and omitted.
func (srv *companyService) ListMyInvitations(ctx context.Context, principal *entity.Principal) ([]*usecase.InvitationView, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	invitations, err := srv.invitationRepo.ListPendingByInvitee(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invitations")
	}

	now := time.Now()
	views := make([]*usecase.InvitationView, 0, len(invitations))
	for _, invitation := range invitations {
		if invitation.Expired(now) {
			if err := srv.invitationRepo.DeleteInvitation(ctx, invitation.ID); err != nil {
				srv.log(ctx).Warn("Failed to delete expired invitation",
					slog.String("invitationID", invitation.ID.String()), slog.Any("error", err))
			}

			continue
		}

		company, err := srv.companyRepo.FindCompanyByID(ctx, invitation.CompanyID)
		if err != nil && !errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, errors.Wrap(err, "failed to load inviting company")
		}
		views = append(views, &usecase.InvitationView{Invitation: invitation, Company: company})
	}

	return views, nil
}

// AcceptInvitation turns a pending invitation into a membership row and
// marks it accepted, both inside one transaction.
func (srv *companyService) AcceptInvitation(ctx context.Context, principal *entity.Principal, invitationID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	invitation, err := srv.loadActionableInvitation(ctx, principal, invitationID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.CompanyRepo()
		invitationRepo := repoFactory.InvitationRepo()

		membership := &entity.CompanyMembership{
			ID:        uuid.New(),
			CompanyID: invitation.CompanyID,
			UserID:    invitation.UserID,
			Role:      invitation.Role,
		}
		if err := companyRepo.CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, repository.ErrDuplicateMembership) {
				return domainerrors.ErrDuplicateMembership
			}

			return errors.Wrap(err, "failed to create membership")
		}

		if err := invitationRepo.UpdateInvitationStatus(ctx, invitation.ID, entity.InvitationAccepted); err != nil {
			return errors.Wrap(err, "failed to update invitation status")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to accept invitation")
	}

	srv.log(ctx).Info("Invitation accepted", slog.String("invitationID", invitationID.String()))

	return nil
}

// DeclineInvitation marks a pending invitation declined.
func (srv *companyService) DeclineInvitation(ctx context.Context, principal *entity.Principal, invitationID uuid.UUID) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	invitation, err := srv.loadActionableInvitation(ctx, principal, invitationID)
	if err != nil {
		return err
	}

	if err := srv.invitationRepo.UpdateInvitationStatus(ctx, invitation.ID, entity.InvitationDeclined); err != nil {
		return errors.Wrap(err, "failed to update invitation status")
	}

	return nil
}

// InvitationQR renders the invitation link as a QR code for in-person
// onboarding.
func (srv *companyService) InvitationQR(ctx context.Context, principal *entity.Principal, companyID, invitationID uuid.UUID) ([]byte, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	company, membership, err := srv.loadCompanyContext(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}

	decision := srv.guard.Authorize(principal, authz.ActionInviteMember, authz.Resource{
		Company:    company,
		Membership: membership,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, domainerrors.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}
	if invitation.CompanyID != companyID {
		return nil, domainerrors.ErrInvitationNotFound
	}

	png, err := srv.qrcodeService.GenerateInvitationQR(invitation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR")
	}

	return png, nil
}

// loadCompanyContext fetches the company and the caller's own membership
// row, tolerating its absence.
func (srv *companyService) loadCompanyContext(ctx context.Context, principal *entity.Principal, companyID uuid.UUID) (*entity.Company, *entity.CompanyMembership, error) {
	company, err := srv.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, nil, domainerrors.ErrCompanyNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find company")
	}

	membership, err := srv.companyRepo.FindMembership(ctx, companyID, principal.ID)
	if err != nil && !errors.Is(err, repository.ErrMembershipNotFound) {
		return nil, nil, errors.Wrap(err, "failed to find membership")
	}

	return company, membership, nil
}

// authorizeMemberMutation loads the target membership and runs the guard
// with the target user attached, so owner protection fires first.
func (srv *companyService) authorizeMemberMutation(ctx context.Context, principal *entity.Principal, companyID, membershipID uuid.UUID, action authz.Action) (*entity.CompanyMembership, error) {
	company, callerMembership, err := srv.loadCompanyContext(ctx, principal, companyID)
	if err != nil {
		return nil, err
	}

	target, err := srv.companyRepo.FindMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find target membership")
	}
	if target.CompanyID != companyID {
		return nil, domainerrors.ErrMembershipNotFound
	}

	decision := srv.guard.Authorize(principal, action, authz.Resource{
		Company:      company,
		Membership:   callerMembership,
		TargetUserID: target.UserID,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return target, nil
}

// loadActionableInvitation returns a pending, unexpired invitation addressed
// to the caller. Expired pending rows are deleted on sight.
func (srv *companyService) loadActionableInvitation(ctx context.Context, principal *entity.Principal, invitationID uuid.UUID) (*entity.CompanyInvitation, error) {
	invitation, err := srv.invitationRepo.FindInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, domainerrors.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	if invitation.UserID != principal.ID {
		return nil, domainerrors.ErrNotAuthorized
	}
	if invitation.Status != entity.InvitationPending {
		return nil, domainerrors.ErrInvitationAlreadyHandled
	}
	if invitation.Expired(time.Now()) {
		if err := srv.invitationRepo.DeleteInvitation(ctx, invitation.ID); err != nil {
			srv.log(ctx).Warn("Failed to delete expired invitation",
				slog.String("invitationID", invitation.ID.String()), slog.Any("error", err))
		}

		return nil, domainerrors.ErrInvitationExpired
	}

	return invitation, nil
}
