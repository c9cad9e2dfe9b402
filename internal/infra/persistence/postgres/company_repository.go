package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) CreateCompany(ctx context.Context, company *entity.Company) error {
	companyModel := fromCompanyDomain(company)
	if err := r.db.WithContext(ctx).Create(companyModel).Error; err != nil {
		return errors.Wrap(err, "failed to create company")
	}

	*company = *toCompanyDomain(companyModel)

	return nil
}

func (r *companyRepository) FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyModel model.CompanyModel
	if err := r.db.WithContext(ctx).First(&companyModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	return toCompanyDomain(&companyModel), nil
}

func (r *companyRepository) ListCompaniesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	err := r.db.WithContext(ctx).
		Distinct("companies.*").
		Joins("LEFT JOIN company_memberships ON company_memberships.company_id = companies.id").
		Where("companies.owner_id = ? OR company_memberships.user_id = ?", userID, userID).
		Order("companies.created_at ASC").
		Find(&companyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies by user")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, toCompanyDomain(&companyModels[i]))
	}

	return companies, nil
}

// DeleteCompany relies on ON DELETE CASCADE for memberships and invitations;
// the shared cart is cleared explicitly since cart rows have no FK constraint.
func (r *companyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.CartItemModel{}, "company_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to clear company cart on delete")
	}

	result := r.db.WithContext(ctx).Delete(&model.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete company")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCompanyNotFound
	}

	return nil
}

func (r *companyRepository) CreateMembership(ctx context.Context, membership *entity.CompanyMembership) error {
	membershipModel := fromMembershipDomain(membership)
	if err := r.db.WithContext(ctx).Create(membershipModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}

		return errors.Wrap(err, "failed to create membership")
	}

	*membership = *toMembershipDomain(membershipModel)

	return nil
}

func (r *companyRepository) FindMembership(ctx context.Context, companyID, userID uuid.UUID) (*entity.CompanyMembership, error) {
	var membershipModel model.CompanyMembershipModel
	err := r.db.WithContext(ctx).
		First(&membershipModel, "company_id = ? AND user_id = ?", companyID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipModel), nil
}

func (r *companyRepository) FindMembershipByID(ctx context.Context, id uuid.UUID) (*entity.CompanyMembership, error) {
	var membershipModel model.CompanyMembershipModel
	if err := r.db.WithContext(ctx).First(&membershipModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership by id")
	}

	return toMembershipDomain(&membershipModel), nil
}

func (r *companyRepository) ListMemberships(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyMembership, error) {
	var membershipModels []model.CompanyMembershipModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&membershipModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	memberships := make([]*entity.CompanyMembership, 0, len(membershipModels))
	for i := range membershipModels {
		memberships = append(memberships, toMembershipDomain(&membershipModels[i]))
	}

	return memberships, nil
}

func (r *companyRepository) UpdateMembershipRole(ctx context.Context, id uuid.UUID, role entity.CompanyRole) error {
	result := r.db.WithContext(ctx).Model(&model.CompanyMembershipModel{}).
		Where("id = ?", id).
		Update("role", string(role))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update membership role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

func (r *companyRepository) DeleteMembership(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompanyMembershipModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

func toCompanyDomain(m *model.CompanyModel) *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		Name:      m.Name,
		OwnerID:   m.OwnerID,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromCompanyDomain(c *entity.Company) *model.CompanyModel {
	return &model.CompanyModel{
		ID:        c.ID,
		Name:      c.Name,
		OwnerID:   c.OwnerID,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMembershipDomain(m *model.CompanyMembershipModel) *entity.CompanyMembership {
	return &entity.CompanyMembership{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Role:      entity.CompanyRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromMembershipDomain(m *entity.CompanyMembership) *model.CompanyMembershipModel {
	return &model.CompanyMembershipModel{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new company invitation repository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) CreateInvitation(ctx context.Context, invitation *entity.CompanyInvitation) error {
	invitationModel := fromInvitationDomain(invitation)
	if err := r.db.WithContext(ctx).Create(invitationModel).Error; err != nil {
		return errors.Wrap(err, "failed to create invitation")
	}

	*invitation = *toInvitationDomain(invitationModel)

	return nil
}

func (r *invitationRepository) FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.CompanyInvitation, error) {
	var invitationModel model.CompanyInvitationModel
	if err := r.db.WithContext(ctx).First(&invitationModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	return toInvitationDomain(&invitationModel), nil
}

func (r *invitationRepository) ListPendingByInvitee(ctx context.Context, userID uuid.UUID) ([]*entity.CompanyInvitation, error) {
	var invitationModels []model.CompanyInvitationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.InvitationPending)).
		Order("created_at DESC").
		Find(&invitationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending invitations")
	}

	return toInvitationsDomain(invitationModels), nil
}

func (r *invitationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyInvitation, error) {
	var invitationModels []model.CompanyInvitationModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&invitationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invitations by company")
	}

	return toInvitationsDomain(invitationModels), nil
}

func (r *invitationRepository) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error {
	result := r.db.WithContext(ctx).Model(&model.CompanyInvitationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invitation status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

func (r *invitationRepository) DeleteInvitation(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompanyInvitationModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete invitation")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}

func toInvitationDomain(m *model.CompanyInvitationModel) *entity.CompanyInvitation {
	return &entity.CompanyInvitation{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Role:      entity.CompanyRole(m.Role),
		Status:    entity.InvitationStatus(m.Status),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toInvitationsDomain(invitationModels []model.CompanyInvitationModel) []*entity.CompanyInvitation {
	invitations := make([]*entity.CompanyInvitation, 0, len(invitationModels))
	for i := range invitationModels {
		invitations = append(invitations, toInvitationDomain(&invitationModels[i]))
	}

	return invitations
}

func fromInvitationDomain(i *entity.CompanyInvitation) *model.CompanyInvitationModel {
	return &model.CompanyInvitationModel{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		UserID:    i.UserID,
		Role:      string(i.Role),
		Status:    string(i.Status),
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
