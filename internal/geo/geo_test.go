package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles(t *testing.T) {
	t.Parallel()

	newYork := Point(40.7128, -74.0060)
	losAngeles := Point(34.0522, -118.2437)

	t.Run("known city pair", func(t *testing.T) {
		t.Parallel()

		d := DistanceMiles(newYork, losAngeles)
		assert.InDelta(t, 2445.0, d, 10.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, DistanceMiles(newYork, losAngeles), DistanceMiles(losAngeles, newYork), 1e-9)
	})

	t.Run("zero distance for identical points", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, DistanceMiles(newYork, newYork))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		t.Parallel()

		d := DistanceMiles(Point(0, 0), Point(1, 0))
		assert.InDelta(t, 69.1, d, 0.1)
	})
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	center := Point(37.7749, -122.4194)
	nearby := Point(37.8044, -122.2712) // Oakland, ~8.4 miles away

	t.Run("inside", func(t *testing.T) {
		t.Parallel()

		assert.True(t, WithinRadius(center, nearby, 10))
	})

	t.Run("outside", func(t *testing.T) {
		t.Parallel()

		assert.False(t, WithinRadius(center, nearby, 5))
	})

	t.Run("exact boundary is inside", func(t *testing.T) {
		t.Parallel()

		d := DistanceMiles(center, nearby)
		assert.True(t, WithinRadius(center, nearby, d))
	})
}

func TestBoundingBox(t *testing.T) {
	t.Parallel()

	t.Run("mid latitude", func(t *testing.T) {
		t.Parallel()

		center := Point(40.0, -74.0)
		bound := BoundingBox(center, 10)

		assert.InDelta(t, 40.0-10.0/69.0, bound.Min.Lat(), 1e-9)
		assert.InDelta(t, 40.0+10.0/69.0, bound.Max.Lat(), 1e-9)
		// 69 * cos(40 deg) ~= 52.86 miles per degree of longitude.
		assert.InDelta(t, -74.0-0.18919, bound.Min.Lon(), 1e-4)
		assert.InDelta(t, -74.0+0.18919, bound.Max.Lon(), 1e-4)
	})

	t.Run("contains points within radius", func(t *testing.T) {
		t.Parallel()

		center := Point(37.7749, -122.4194)
		bound := BoundingBox(center, 10)
		nearby := Point(37.8044, -122.2712)

		assert.True(t, bound.Contains(nearby))
	})

	t.Run("pole uses longitude floor", func(t *testing.T) {
		t.Parallel()

		bound := BoundingBox(Point(90, 0), 10)

		// cos(90 deg) collapses to ~0, so the scale floor takes over and the
		// box spans every longitude.
		assert.Less(t, bound.Min.Lon(), -180.0)
		assert.Greater(t, bound.Max.Lon(), 180.0)
	})
}
