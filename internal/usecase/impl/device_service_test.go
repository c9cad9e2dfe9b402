package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return deviceServiceFixtures{service: service, deviceRepo: deviceRepo}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(_ context.Context, device *entity.UserDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, principal, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
		DeviceID: "pixel-8",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-abc", device.FCMToken)
	assert.Equal(t, "pixel-8", device.DeviceID)
}

func TestDeviceService_RegisterDevice_TokenRequired(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), &entity.Principal{ID: uuid.New()}, &usecase.RegisterDeviceInput{
		DeviceID: "pixel-8",
	})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_NilPrincipal(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), nil, &usecase.RegisterDeviceInput{
		FCMToken: "fcm-token-abc",
		DeviceID: "pixel-8",
	})
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestDeviceService_UnregisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID, Role: entity.RoleUser}

	fx.deviceRepo.EXPECT().
		DeleteByUserAndDevice(ctx, userID, "pixel-8").
		Return(nil)

	require.NoError(t, fx.service.UnregisterDevice(ctx, principal, "pixel-8"))
}

func TestDeviceService_UnregisterDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	principal := &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	fx.deviceRepo.EXPECT().
		DeleteByUserAndDevice(ctx, principal.ID, "gone").
		Return(repository.ErrDeviceNotFound)

	err := fx.service.UnregisterDevice(ctx, principal, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
