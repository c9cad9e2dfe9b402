package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice stores or refreshes a push token for the caller's device.
func (srv *deviceService) RegisterDevice(ctx context.Context, principal *entity.Principal, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.FCMToken == "" || input.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   principal.ID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}
	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Info("Device registered", slog.String("deviceID", input.DeviceID))

	return device, nil
}

// UnregisterDevice removes the caller's registration for one device.
func (srv *deviceService) UnregisterDevice(ctx context.Context, principal *entity.Principal, deviceID string) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.deviceRepo.DeleteByUserAndDevice(ctx, principal.ID, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to unregister device")
	}

	return nil
}
