package impl

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/geo"

	"github.com/google/uuid"
)

// AudienceResolver computes the recipient set of a dispatch. An explicit
// receiver list wins over group targeting; a geo radius narrows group
// matches to users with an approved location sample inside the circle.
// The sender never receives their own dispatch.
type AudienceResolver struct {
	accounts  repository.AccountRepository
	locations repository.LocationRepository
}

// NewAudienceResolver creates an audience resolver.
func NewAudienceResolver(accounts repository.AccountRepository, locations repository.LocationRepository) *AudienceResolver {
	return &AudienceResolver{
		accounts:  accounts,
		locations: locations,
	}
}

// Resolve returns the deduplicated recipient IDs for a dispatch.
func (r *AudienceResolver) Resolve(ctx context.Context, dispatch *entity.Dispatch) ([]uuid.UUID, error) {
	if len(dispatch.ReceiverIDs) > 0 {
		return dedupeExcluding(dispatch.ReceiverIDs, dispatch.SenderID), nil
	}

	if !dispatch.Targets.Any() {
		return nil, domainerrors.ErrValidation.WithMessage("dispatch selects no recipients or target groups")
	}

	candidates, err := r.accounts.ListIDsByKinds(ctx, dispatch.Targets.Kinds())
	if err != nil {
		return nil, err
	}

	if dispatch.CenterLat != nil && dispatch.CenterLon != nil && dispatch.RadiusMiles != nil {
		within, err := r.usersWithinRadius(ctx, *dispatch.CenterLat, *dispatch.CenterLon, *dispatch.RadiusMiles)
		if err != nil {
			return nil, err
		}

		filtered := make([]uuid.UUID, 0, len(candidates))
		for _, id := range candidates {
			if within[id] {
				filtered = append(filtered, id)
			}
		}
		candidates = filtered
	}

	return dedupeExcluding(candidates, dispatch.SenderID), nil
}

// usersWithinRadius returns the set of users with at least one approved
// location sample inside the circle. The bounding box narrows the database
// scan; the haversine check decides membership.
func (r *AudienceResolver) usersWithinRadius(ctx context.Context, latitude, longitude, radiusMiles float64) (map[uuid.UUID]bool, error) {
	center := geo.Point(latitude, longitude)
	bound := geo.BoundingBox(center, radiusMiles)

	samples, err := r.locations.ListApprovedWithinBound(ctx, bound)
	if err != nil {
		return nil, err
	}

	within := make(map[uuid.UUID]bool, len(samples))
	for _, sample := range samples {
		if within[sample.UserID] {
			continue
		}
		if geo.WithinRadius(center, geo.Point(sample.Latitude, sample.Longitude), radiusMiles) {
			within[sample.UserID] = true
		}
	}

	return within, nil
}

// dedupeExcluding removes duplicates and the excluded ID while preserving
// first-seen order.
func dedupeExcluding(ids []uuid.UUID, exclude uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == exclude {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
