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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []model.CartItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id IS NULL", userID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items by user")
	}

	return toCartItemsDomain(itemModels), nil
}

func (r *cartRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []model.CartItemModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items by company")
	}

	return toCartItemsDomain(itemModels), nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemModel model.CartItemModel
	if err := r.db.WithContext(ctx).First(&itemModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemModel), nil
}

// Upsert merges the new quantity into an existing row for the same article in
// the same cart, or inserts a fresh row.
func (r *cartRepository) Upsert(ctx context.Context, item *entity.CartItem) error {
	query := r.db.WithContext(ctx).Where("user_id = ? AND article_id = ?", item.UserID, item.ArticleID)
	if item.CompanyID != nil {
		query = r.db.WithContext(ctx).Where("company_id = ? AND article_id = ?", *item.CompanyID, item.ArticleID)
	} else {
		query = query.Where("company_id IS NULL")
	}

	var existing model.CartItemModel
	err := query.First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "failed to look up cart item for upsert")
	}

	if err == nil {
		result := r.db.WithContext(ctx).Model(&model.CartItemModel{}).
			Where("id = ?", existing.ID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to merge cart item quantity")
		}

		item.ID = existing.ID
		item.Quantity += existing.Quantity

		return nil
	}

	itemModel := fromCartItemDomain(item)
	if err := r.db.WithContext(ctx).Create(itemModel).Error; err != nil {
		return errors.Wrap(err, "failed to create cart item")
	}

	item.ID = itemModel.ID
	item.CreatedAt = itemModel.CreatedAt
	item.UpdatedAt = itemModel.UpdatedAt

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (r *cartRepository) Remove(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CartItemModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (r *cartRepository) ClearUserCart(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "user_id = ? AND company_id IS NULL", userID).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear user cart")
	}

	return nil
}

func (r *cartRepository) ClearCompanyCart(ctx context.Context, companyID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "company_id = ?", companyID).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear company cart")
	}

	return nil
}

func toCartItemDomain(m *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        m.ID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		ArticleID: m.ArticleID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCartItemsDomain(itemModels []model.CartItemModel) []*entity.CartItem {
	items := make([]*entity.CartItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, toCartItemDomain(&itemModels[i]))
	}

	return items
}

func fromCartItemDomain(item *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		CompanyID: item.CompanyID,
		ArticleID: item.ArticleID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
