package impl

import (
	"context"
	"testing"

	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	mockRepo "padpro/internal/mocks/repository"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_New(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{Token: "fcm-token", DeviceID: "device-abc", Platform: "ios"}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, nil)

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.PushDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "device-abc", device.DeviceID)
	assert.True(t, device.IsEnabled)
	assert.True(t, device.PriceAlertsEnabled)
	assert.False(t, device.MarketingEnabled)
}

func TestDeviceService_RegisterDevice_ReenablesExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.PushDevice{
		ID:        uuid.New(),
		UserID:    userID,
		DeviceID:  "device-abc",
		Token:     "stale-token",
		Platform:  "ios",
		IsEnabled: false,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.PushDevice{existing}, nil)

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.PushDevice")).
		RunAndReturn(func(_ context.Context, device *entity.PushDevice) error {
			assert.Equal(t, existing.ID, device.ID)
			assert.Equal(t, "fresh-token", device.Token)
			assert.True(t, device.IsEnabled)

			return nil
		})

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		Token:    "fresh-token",
		DeviceID: "device-abc",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.True(t, device.IsEnabled)
}

func TestDeviceService_UpdateToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.PushDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		UpdateToken(ctx, deviceID, "rotated-token").
		Return(nil)

	err := fx.service.UpdateToken(ctx, userID, deviceID, "rotated-token")
	require.NoError(t, err)
}

func TestDeviceService_UpdateToken_WrongOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.PushDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.UpdateToken(ctx, uuid.New(), deviceID, "rotated-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_UpdatePreferences(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.PushDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		UpdatePreferences(ctx, deviceID, false, true).
		Return(nil)

	err := fx.service.UpdatePreferences(ctx, userID, deviceID, &usecase.DevicePreferences{
		PriceAlertsEnabled: false,
		MarketingEnabled:   true,
	})
	require.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.RemoveDevice(ctx, uuid.New(), deviceID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.PushDevice{ID: deviceID, UserID: userID}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.RemoveDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.PushDevice{{ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
