package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration does not exist.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the persistence operations for push-notification
// device registrations.
type DeviceRepository interface {
	// Upsert registers a device token, replacing an existing row for the same
	// (user, device) pair.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// ListActiveByUser returns the active device registrations of a user.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateByToken marks the registration carrying the FCM token inactive.
	// Used when the push provider reports the token gone.
	DeactivateByToken(ctx context.Context, fcmToken string) error

	// DeleteByUserAndDevice removes the registration of one device of a user.
	DeleteByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
