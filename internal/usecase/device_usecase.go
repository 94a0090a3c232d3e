package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines push device registration operations.
type DeviceUsecase interface {
	// Register stores a device token for push delivery, reactivating the
	// device if it was previously deactivated.
	Register(ctx context.Context, userID uuid.UUID, fcmToken, deviceID, platform string) (*entity.UserDevice, error)
}
