package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"beacon/internal/domain/entity"
)

// LocationRepository provides access to user location samples.
type LocationRepository interface {
	// Upsert stores a sample, replacing any existing sample for the same
	// user and source.
	Upsert(ctx context.Context, sample *entity.LocationSample) error

	// ListByUser returns all samples recorded for a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LocationSample, error)

	// ListApprovedWithinBound returns samples from approved sources whose
	// point lies inside the bounding box. Callers apply the exact distance
	// check; the bound is only a coarse prefilter.
	ListApprovedWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.LocationSample, error)
}
