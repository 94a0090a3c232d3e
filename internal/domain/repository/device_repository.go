package repository

import (
	"context"

	"github.com/google/uuid"

	"beacon/internal/domain/entity"
)

// DeviceRepository provides access to registered push devices.
type DeviceRepository interface {
	// Upsert registers a device, replacing any existing record for the same
	// user and device identifier.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// ListActiveTokensByUsers returns distinct active FCM tokens for the
	// given users.
	ListActiveTokensByUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error)

	// DeactivateByTokens marks devices with the given tokens inactive.
	// Used to clean up tokens the push provider reports as dead.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
