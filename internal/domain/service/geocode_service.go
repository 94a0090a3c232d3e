package service

import "context"

// Geocoder resolves a postal address into geographic coordinates.
type Geocoder interface {
	// Geocode returns the coordinates of the first match for address.
	Geocode(ctx context.Context, address string) (latitude, longitude float64, err error)
}
