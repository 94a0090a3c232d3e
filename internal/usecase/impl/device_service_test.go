package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"
)

func TestRegisterDevice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("registers an active device", func(t *testing.T) {
		devices := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(devices)
		devices.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		device, err := svc.Register(ctx, userID, "token-abc", "device-1", "android")

		require.NoError(t, err)
		assert.True(t, device.IsActive)
		assert.Equal(t, "android", device.Platform)
	})

	t.Run("defaults the platform to web", func(t *testing.T) {
		devices := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(devices)
		devices.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		device, err := svc.Register(ctx, userID, "token-abc", "device-1", "")

		require.NoError(t, err)
		assert.Equal(t, "web", device.Platform)
	})

	t.Run("rejects a blank token", func(t *testing.T) {
		svc := NewDeviceService(mockRepo.NewMockDeviceRepository(t))

		_, err := svc.Register(ctx, userID, "  ", "device-1", "ios")

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	})

	t.Run("rejects an unknown platform", func(t *testing.T) {
		svc := NewDeviceService(mockRepo.NewMockDeviceRepository(t))

		_, err := svc.Register(ctx, userID, "token-abc", "device-1", "blackberry")

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	})
}
