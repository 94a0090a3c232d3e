package impl

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/geo"

	"github.com/paulmach/orb"
)

// AddressResolver turns a sender's home address into a geographic point.
// The first successful resolution is cached on the account, so each address
// is geocoded at most once.
type AddressResolver struct {
	accounts repository.AccountRepository
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewAddressResolver creates an address resolver.
func NewAddressResolver(accounts repository.AccountRepository, geocoder service.Geocoder, logger *slog.Logger) *AddressResolver {
	return &AddressResolver{
		accounts: accounts,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Resolve returns the account's geographic point, geocoding its address on
// first use.
func (r *AddressResolver) Resolve(ctx context.Context, account *entity.Account) (orb.Point, error) {
	if account.HasPoint() {
		return geo.Point(*account.Latitude, *account.Longitude), nil
	}

	addressLine := account.AddressLine()
	if addressLine == "" {
		return orb.Point{}, domainerrors.ErrMissingAddress
	}

	latitude, longitude, err := r.geocoder.Geocode(ctx, addressLine)
	if err != nil {
		return orb.Point{}, domainerrors.ErrGeocodeFailure.WithCause(err)
	}

	// Cache the result; a failed write only means we geocode again next time.
	if err := r.accounts.UpdateCoordinates(ctx, account.ID, latitude, longitude); err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to cache resolved coordinates",
			slog.String("accountId", account.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	account.Latitude = &latitude
	account.Longitude = &longitude

	return geo.Point(latitude, longitude), nil
}
