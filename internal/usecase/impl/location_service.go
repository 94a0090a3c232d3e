package impl

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type locationService struct {
	locations repository.LocationRepository
}

// NewLocationService creates the user location use case.
func NewLocationService(locations repository.LocationRepository) usecase.LocationUsecase {
	return &locationService{
		locations: locations,
	}
}

// Record stores the user's current location from the given source. Samples
// from unapproved sources are stored but never matched by geo targeting.
func (s *locationService) Record(ctx context.Context, userID uuid.UUID, latitude, longitude float64, source entity.LocationSource) (*entity.LocationSample, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, domainerrors.ErrValidation.WithMessage("coordinates out of range")
	}

	switch source {
	case entity.LocationSourceGPS, entity.LocationSourceZip, entity.LocationSourceCity, entity.LocationSourceManual:
	default:
		return nil, domainerrors.ErrValidation.WithMessage("unknown location source")
	}

	sample := &entity.LocationSample{
		ID:         uuid.New(),
		UserID:     userID,
		Latitude:   latitude,
		Longitude:  longitude,
		Source:     source,
		RecordedAt: time.Now(),
	}

	if err := s.locations.Upsert(ctx, sample); err != nil {
		return nil, err
	}

	return sample, nil
}

// List returns the user's stored location samples.
func (s *locationService) List(ctx context.Context, userID uuid.UUID) ([]*entity.LocationSample, error) {
	return s.locations.ListByUser(ctx, userID)
}
