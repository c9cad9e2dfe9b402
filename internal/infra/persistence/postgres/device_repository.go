package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new push device repository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert replaces the token of an existing (user, device) row, reactivating
// it if it had been marked inactive.
func (r *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	deviceModel := fromDeviceDomain(device)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"fcm_token": deviceModel.FCMToken,
				"platform":  deviceModel.Platform,
				"is_active": true,
			}),
		}).
		Create(deviceModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	*device = *toDeviceDomain(deviceModel)

	return nil
}

func (r *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []model.UserDeviceModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&deviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for i := range deviceModels {
		devices = append(devices, toDeviceDomain(&deviceModels[i]))
	}

	return devices, nil
}

func (r *deviceRepository) DeactivateByToken(ctx context.Context, fcmToken string) error {
	err := r.db.WithContext(ctx).Model(&model.UserDeviceModel{}).
		Where("fcm_token = ?", fcmToken).
		Update("is_active", false).Error
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device token")
	}

	return nil
}

func (r *deviceRepository) DeleteByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	result := r.db.WithContext(ctx).
		Delete(&model.UserDeviceModel{}, "user_id = ? AND device_id = ?", userID, deviceID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(m *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        m.ID,
		UserID:    m.UserID,
		FCMToken:  m.FCMToken,
		DeviceID:  m.DeviceID,
		Platform:  m.Platform,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDeviceDomain(d *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        d.ID,
		UserID:    d.UserID,
		DeviceID:  d.DeviceID,
		FCMToken:  d.FCMToken,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
