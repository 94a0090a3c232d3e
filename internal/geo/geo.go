// Package geo provides the distance math used by radius targeting.
// All distances are in statute miles.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3959.0

// milesPerDegreeLat approximates the north-south span of one degree of
// latitude. The east-west span shrinks with the cosine of the latitude.
const milesPerDegreeLat = 69.0

// lonScaleFloor keeps the longitude delta finite near the poles, where
// cos(lat) approaches zero.
const lonScaleFloor = 0.0001

// Point builds an orb.Point from latitude and longitude.
// orb stores points as (lon, lat).
func Point(latitude, longitude float64) orb.Point {
	return orb.Point{longitude, latitude}
}

// DistanceMiles returns the great-circle distance between two points using
// the haversine formula.
func DistanceMiles(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLon := degToRad(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// WithinRadius reports whether b lies within radiusMiles of a. Points exactly
// on the boundary are inside.
func WithinRadius(a, b orb.Point, radiusMiles float64) bool {
	return DistanceMiles(a, b) <= radiusMiles
}

// BoundingBox returns the smallest lat/lon box guaranteed to contain the
// circle of radiusMiles around center. It over-selects near the poles, so
// callers must still apply the exact distance check.
func BoundingBox(center orb.Point, radiusMiles float64) orb.Bound {
	deltaLat := radiusMiles / milesPerDegreeLat

	lonScale := milesPerDegreeLat * math.Cos(degToRad(center.Lat()))
	if lonScale < lonScaleFloor {
		lonScale = lonScaleFloor
	}
	deltaLon := radiusMiles / lonScale

	return orb.Bound{
		Min: orb.Point{center.Lon() - deltaLon, center.Lat() - deltaLat},
		Max: orb.Point{center.Lon() + deltaLon, center.Lat() + deltaLat},
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
