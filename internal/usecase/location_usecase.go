package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationUsecase defines the user location operations.
type LocationUsecase interface {
	// Record stores the user's current location from the given source,
	// replacing any earlier sample from the same source.
	Record(ctx context.Context, userID uuid.UUID, latitude, longitude float64, source entity.LocationSource) (*entity.LocationSample, error)

	// List returns the user's stored location samples.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.LocationSample, error)
}
