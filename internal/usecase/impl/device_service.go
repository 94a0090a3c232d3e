package impl

import (
	"context"
	"strings"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	devices repository.DeviceRepository
}

// NewDeviceService creates the push device registration use case.
func NewDeviceService(devices repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		devices: devices,
	}
}

// Register stores a device token for push delivery. Re-registering the same
// device replaces its token and reactivates it.
func (s *deviceService) Register(ctx context.Context, userID uuid.UUID, fcmToken, deviceID, platform string) (*entity.UserDevice, error) {
	fcmToken = strings.TrimSpace(fcmToken)
	deviceID = strings.TrimSpace(deviceID)
	if fcmToken == "" || deviceID == "" {
		return nil, domainerrors.ErrValidation.WithMessage("fcm token and device id are required")
	}

	switch platform {
	case "ios", "android", "web":
	case "":
		platform = "web"
	default:
		return nil, domainerrors.ErrValidation.WithMessage("unknown platform")
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  fcmToken,
		DeviceID:  deviceID,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.devices.Upsert(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}
