package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase ledger repository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) CreateEntries(ctx context.Context, entries []*entity.PurchaseLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]model.PurchaseLedgerEntryModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, *fromLedgerEntryDomain(entry))
	}

	if err := r.db.WithContext(ctx).Create(&entryModels).Error; err != nil {
		return errors.Wrap(err, "failed to create purchase ledger entries")
	}

	for i := range entryModels {
		entries[i].ID = entryModels[i].ID
		entries[i].CreatedAt = entryModels[i].CreatedAt
	}

	return nil
}

func (r *purchaseRepository) CreateCompanyEntries(ctx context.Context, entries []*entity.CompanyPurchaseLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]model.CompanyPurchaseLedgerEntryModel, 0, len(entries))
	for _, entry := range entries {
		entryModels = append(entryModels, model.CompanyPurchaseLedgerEntryModel{
			ID:           entry.ID,
			CompanyID:    entry.CompanyID,
			UserID:       entry.UserID,
			ArticleID:    entry.ArticleID,
			Quantity:     entry.Quantity,
			UnitPrice:    entry.UnitPrice,
			PurchaseDate: entry.PurchaseDate,
			OrderID:      entry.OrderID,
			PaidAt:       entry.PaidAt,
			CreatedAt:    entry.CreatedAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&entryModels).Error; err != nil {
		return errors.Wrap(err, "failed to create company purchase ledger entries")
	}

	for i := range entryModels {
		entries[i].ID = entryModels[i].ID
		entries[i].CreatedAt = entryModels[i].CreatedAt
	}

	return nil
}

func (r *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseLedgerEntry, error) {
	var entryModels []model.PurchaseLedgerEntryModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC, created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase ledger entries by user")
	}

	return toLedgerEntriesDomain(entryModels), nil
}

func (r *purchaseRepository) ListAll(ctx context.Context) ([]*entity.PurchaseLedgerEntry, error) {
	var entryModels []model.PurchaseLedgerEntryModel
	err := r.db.WithContext(ctx).
		Order("purchase_date DESC, created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all purchase ledger entries")
	}

	return toLedgerEntriesDomain(entryModels), nil
}

func (r *purchaseRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.CompanyPurchaseLedgerEntry, error) {
	var entryModels []model.CompanyPurchaseLedgerEntryModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("purchase_date DESC, created_at DESC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company purchase ledger entries")
	}

	entries := make([]*entity.CompanyPurchaseLedgerEntry, 0, len(entryModels))
	for i := range entryModels {
		m := &entryModels[i]
		entries = append(entries, &entity.CompanyPurchaseLedgerEntry{
			ID:           m.ID,
			CompanyID:    m.CompanyID,
			UserID:       m.UserID,
			ArticleID:    m.ArticleID,
			Quantity:     m.Quantity,
			UnitPrice:    m.UnitPrice,
			PurchaseDate: m.PurchaseDate,
			OrderID:      m.OrderID,
			PaidAt:       m.PaidAt,
			CreatedAt:    m.CreatedAt,
		})
	}

	return entries, nil
}

func (r *purchaseRepository) ListByOrderID(ctx context.Context, orderID string) ([]*entity.PurchaseLedgerEntry, error) {
	var entryModels []model.PurchaseLedgerEntryModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchase ledger entries by order id")
	}

	return toLedgerEntriesDomain(entryModels), nil
}

func (r *purchaseRepository) CountByOrderID(ctx context.Context, orderID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseLedgerEntryModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count purchase ledger entries by order id")
	}

	return count, nil
}

func (r *purchaseRepository) CountCompanyByOrderID(ctx context.Context, orderID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CompanyPurchaseLedgerEntryModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count company purchase ledger entries by order id")
	}

	return count, nil
}

func (r *purchaseRepository) MarkPaidByOrderID(ctx context.Context, orderID string, paidAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.PurchaseLedgerEntryModel{}).
		Where("order_id = ?", orderID).
		Update("paid_at", paidAt).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark purchase ledger entries paid")
	}

	return nil
}

func (r *purchaseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PurchaseLedgerEntryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count purchase ledger entries")
	}

	return count, nil
}

func toLedgerEntryDomain(m *model.PurchaseLedgerEntryModel) *entity.PurchaseLedgerEntry {
	return &entity.PurchaseLedgerEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		ArticleID:    m.ArticleID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		PurchaseDate: m.PurchaseDate,
		OrderID:      m.OrderID,
		PaidAt:       m.PaidAt,
		CreatedAt:    m.CreatedAt,
	}
}

func toLedgerEntriesDomain(entryModels []model.PurchaseLedgerEntryModel) []*entity.PurchaseLedgerEntry {
	entries := make([]*entity.PurchaseLedgerEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, toLedgerEntryDomain(&entryModels[i]))
	}

	return entries
}

func fromLedgerEntryDomain(e *entity.PurchaseLedgerEntry) *model.PurchaseLedgerEntryModel {
	return &model.PurchaseLedgerEntryModel{
		ID:           e.ID,
		UserID:       e.UserID,
		ArticleID:    e.ArticleID,
		Quantity:     e.Quantity,
		UnitPrice:    e.UnitPrice,
		PurchaseDate: e.PurchaseDate,
		OrderID:      e.OrderID,
		PaidAt:       e.PaidAt,
		CreatedAt:    e.CreatedAt,
	}
}
