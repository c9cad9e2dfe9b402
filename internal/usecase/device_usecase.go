package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterDeviceInput registers a push-notification token for the caller.
type RegisterDeviceInput struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase manages push-notification device registrations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, principal *entity.Principal, input *RegisterDeviceInput) (*entity.UserDevice, error)
	UnregisterDevice(ctx context.Context, principal *entity.Principal, deviceID string) error
}
