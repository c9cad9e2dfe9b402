package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// companyServiceFixtures holds all test dependencies for company service tests.
type companyServiceFixtures struct {
	service        usecase.CompanyUsecase
	txManager      *mockRepo.MockTransactionManager
	companyRepo    *mockRepo.MockCompanyRepository
	invitationRepo *mockRepo.MockInvitationRepository
	userRepo       *mockRepo.MockUserRepository
	qrcodeService  *mockService.MockQRCodeService
}

func createTestCompanyService(t *testing.T) companyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	service := NewCompanyService(CompanyServiceParams{
		TxManager:      txManager,
		CompanyRepo:    companyRepo,
		InvitationRepo: invitationRepo,
		UserRepo:       userRepo,
		QRCodeService:  qrcodeService,
		Guard:          authz.NewGuard(),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return companyServiceFixtures{
		service:        service,
		txManager:      txManager,
		companyRepo:    companyRepo,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		qrcodeService:  qrcodeService,
	}
}

func TestCompanyService_CreateCompany(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.companyRepo.EXPECT().
		CreateCompany(ctx, mock.AnythingOfType("*entity.Company")).
		Return(nil)

	company, err := fx.service.CreateCompany(ctx, principal, &usecase.CreateCompanyInput{
		Name:  "好茶股份有限公司",
		Email: "contact@tea.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "好茶股份有限公司", company.Name)
	assert.Equal(t, userID, company.OwnerID)
}

func TestCompanyService_CreateCompany_NameRequired(t *testing.T) {
	fx := createTestCompanyService(t)

	company, err := fx.service.CreateCompany(context.Background(), &entity.Principal{ID: uuid.New()}, &usecase.CreateCompanyInput{})
	assert.Nil(t, company)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCompanyService_InviteMember(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: ownerID}
	invitee := &entity.User{ID: uuid.New(), Email: "member@example.com"}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(invitee, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, invitee.ID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.invitationRepo.EXPECT().
		CreateInvitation(ctx, mock.AnythingOfType("*entity.CompanyInvitation")).
		Return(nil)

	invitation, err := fx.service.InviteMember(ctx, principal, &usecase.InviteMemberInput{
		CompanyID: companyID,
		Email:     "member@example.com",
		Role:      entity.CompanyRoleMember,
	})
	require.NoError(t, err)
	assert.Equal(t, invitee.ID, invitation.UserID)
	assert.Equal(t, entity.InvitationPending, invitation.Status)
	assert.True(t, invitation.ExpiresAt.After(time.Now()))
}

func TestCompanyService_InviteMember_OwnerCannotBeInvited(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: ownerID}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "owner@example.com").
		Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)

	invitation, err := fx.service.InviteMember(ctx, principal, &usecase.InviteMemberInput{
		CompanyID: companyID,
		Email:     "owner@example.com",
		Role:      entity.CompanyRoleMember,
	})
	assert.Nil(t, invitation)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateMembership)
}

func TestCompanyService_InviteMember_MemberDenied(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: uuid.New()}
	membership := &entity.CompanyMembership{CompanyID: companyID, UserID: userID, Role: entity.CompanyRoleMember}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(membership, nil)

	invitation, err := fx.service.InviteMember(ctx, principal, &usecase.InviteMemberInput{
		CompanyID: companyID,
		Email:     "member@example.com",
		Role:      entity.CompanyRoleMember,
	})
	assert.Nil(t, invitation)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCompanyService_AcceptInvitation_CreatesMembershipAndMarksAccepted(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	invitationID := uuid.New()
	companyID := uuid.New()
	invitation := &entity.CompanyInvitation{
		ID:        invitationID,
		CompanyID: companyID,
		UserID:    userID,
		Role:      entity.CompanyRoleMember,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CompanyRepo().Return(fx.companyRepo)
	factory.EXPECT().InvitationRepo().Return(fx.invitationRepo)

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(invitation, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.companyRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.CompanyMembership")).
		Run(func(_ context.Context, membership *entity.CompanyMembership) {
			assert.Equal(t, companyID, membership.CompanyID)
			assert.Equal(t, userID, membership.UserID)
			assert.Equal(t, entity.CompanyRoleMember, membership.Role)
		}).
		Return(nil)
	fx.invitationRepo.EXPECT().
		UpdateInvitationStatus(ctx, invitationID, entity.InvitationAccepted).
		Return(nil)

	require.NoError(t, fx.service.AcceptInvitation(ctx, principal, invitationID))
}

func TestCompanyService_AcceptInvitation_DuplicateMembershipRollsBack(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	invitationID := uuid.New()
	invitation := &entity.CompanyInvitation{
		ID:        invitationID,
		CompanyID: uuid.New(),
		UserID:    userID,
		Role:      entity.CompanyRoleMember,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CompanyRepo().Return(fx.companyRepo)
	factory.EXPECT().InvitationRepo().Return(fx.invitationRepo).Maybe()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(invitation, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	fx.companyRepo.EXPECT().
		CreateMembership(ctx, mock.AnythingOfType("*entity.CompanyMembership")).
		Return(repository.ErrDuplicateMembership)

	// The status update never runs: the transaction fails as a whole.
	err := fx.service.AcceptInvitation(ctx, principal, invitationID)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateMembership)
}

func TestCompanyService_AcceptInvitation_WrongInviteeDenied(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.CompanyInvitation{
			ID:        invitationID,
			UserID:    uuid.New(),
			Status:    entity.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	err := fx.service.AcceptInvitation(ctx, principal, invitationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCompanyService_AcceptInvitation_AlreadyHandled(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.CompanyInvitation{
			ID:        invitationID,
			UserID:    userID,
			Status:    entity.InvitationDeclined,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	// Status transitions are monotonic: a handled invitation stays handled.
	err := fx.service.AcceptInvitation(ctx, principal, invitationID)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationAlreadyHandled)
}

func TestCompanyService_AcceptInvitation_ExpiredPendingDeleted(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.CompanyInvitation{
			ID:        invitationID,
			UserID:    userID,
			Status:    entity.InvitationPending,
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)
	fx.invitationRepo.EXPECT().
		DeleteInvitation(ctx, invitationID).
		Return(nil)

	err := fx.service.AcceptInvitation(ctx, principal, invitationID)
	assert.ErrorIs(t, err, domainerrors.ErrInvitationExpired)
}

func TestCompanyService_DeclineInvitation(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.CompanyInvitation{
			ID:        invitationID,
			UserID:    userID,
			Status:    entity.InvitationPending,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	fx.invitationRepo.EXPECT().
		UpdateInvitationStatus(ctx, invitationID, entity.InvitationDeclined).
		Return(nil)

	require.NoError(t, fx.service.DeclineInvitation(ctx, principal, invitationID))
}

func TestCompanyService_ListMyInvitations_ExpiredRowsLazilyDeleted(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, Name: "好茶股份有限公司"}
	fresh := &entity.CompanyInvitation{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	expired := &entity.CompanyInvitation{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		Status:    entity.InvitationPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.invitationRepo.EXPECT().
		ListPendingByInvitee(ctx, userID).
		Return([]*entity.CompanyInvitation{fresh, expired}, nil)
	fx.invitationRepo.EXPECT().
		DeleteInvitation(ctx, expired.ID).
		Return(nil)
	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)

	views, err := fx.service.ListMyInvitations(ctx, principal)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, fresh.ID, views[0].Invitation.ID)
	assert.Equal(t, company, views[0].Company)
}

func TestCompanyService_ChangeMemberRole_OwnerProtected(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: ownerID}
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	membershipID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, admin.ID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.companyRepo.EXPECT().
		FindMembershipByID(ctx, membershipID).
		Return(&entity.CompanyMembership{
			ID:        membershipID,
			CompanyID: companyID,
			UserID:    ownerID,
			Role:      entity.CompanyRoleAdmin,
		}, nil)

	// Owner protection outranks the platform admin allow rule.
	err := fx.service.ChangeMemberRole(ctx, admin, &usecase.ChangeMemberRoleInput{
		CompanyID:    companyID,
		MembershipID: membershipID,
		Role:         entity.CompanyRoleMember,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCannotModifyOwner)
}

func TestCompanyService_ChangeMemberRole(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()
	company := &entity.Company{ID: companyID, OwnerID: ownerID}
	membershipID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(company, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.companyRepo.EXPECT().
		FindMembershipByID(ctx, membershipID).
		Return(&entity.CompanyMembership{
			ID:        membershipID,
			CompanyID: companyID,
			UserID:    uuid.New(),
			Role:      entity.CompanyRoleMember,
		}, nil)
	fx.companyRepo.EXPECT().
		UpdateMembershipRole(ctx, membershipID, entity.CompanyRoleAdmin).
		Return(nil)

	err := fx.service.ChangeMemberRole(ctx, principal, &usecase.ChangeMemberRoleInput{
		CompanyID:    companyID,
		MembershipID: membershipID,
		Role:         entity.CompanyRoleAdmin,
	})
	require.NoError(t, err)
}

func TestCompanyService_ChangeMemberRole_InvalidRole(t *testing.T) {
	fx := createTestCompanyService(t)

	err := fx.service.ChangeMemberRole(context.Background(), &entity.Principal{ID: uuid.New()}, &usecase.ChangeMemberRoleInput{
		CompanyID:    uuid.New(),
		MembershipID: uuid.New(),
		Role:         entity.CompanyRole("owner"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCompanyService_RemoveMember_WrongCompany(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()
	membershipID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, OwnerID: ownerID}, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.companyRepo.EXPECT().
		FindMembershipByID(ctx, membershipID).
		Return(&entity.CompanyMembership{
			ID:        membershipID,
			CompanyID: uuid.New(), // belongs to a different company
			UserID:    uuid.New(),
		}, nil)

	err := fx.service.RemoveMember(ctx, principal, companyID, membershipID)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipNotFound)
}

func TestCompanyService_LeaveCompany(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()
	membership := &entity.CompanyMembership{ID: uuid.New(), CompanyID: companyID, UserID: userID, Role: entity.CompanyRoleMember}

	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(membership, nil)
	fx.companyRepo.EXPECT().
		DeleteMembership(ctx, membership.ID).
		Return(nil)

	require.NoError(t, fx.service.LeaveCompany(ctx, principal, companyID))
}

func TestCompanyService_LeaveCompany_OwnerHasNoRow(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)

	err := fx.service.LeaveCompany(ctx, principal, companyID)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipNotFound)
}

func TestCompanyService_InvitationQR(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	principal := &entity.Principal{ID: ownerID, Role: entity.RoleUser}
	companyID := uuid.New()
	invitationID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, OwnerID: ownerID}, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, ownerID).
		Return(nil, repository.ErrMembershipNotFound)
	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.CompanyInvitation{ID: invitationID, CompanyID: companyID}, nil)
	fx.qrcodeService.EXPECT().
		GenerateInvitationQR(invitationID).
		Return(png, nil)

	out, err := fx.service.InvitationQR(ctx, principal, companyID, invitationID)
	require.NoError(t, err)
	assert.Equal(t, png, out)
}

func TestCompanyService_DeleteCompany_MemberDenied(t *testing.T) {
	fx := createTestCompanyService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}
	companyID := uuid.New()

	fx.companyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, OwnerID: uuid.New()}, nil)
	fx.companyRepo.EXPECT().
		FindMembership(ctx, companyID, userID).
		Return(&entity.CompanyMembership{CompanyID: companyID, UserID: userID, Role: entity.CompanyRoleMember}, nil)

	err := fx.service.DeleteCompany(ctx, principal, companyID)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
