package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSource tags how a location sample was obtained.
type LocationSource string

const (
	LocationSourceGPS    LocationSource = "gps"
	LocationSourceZip    LocationSource = "zip"
	LocationSourceCity   LocationSource = "city"
	LocationSourceManual LocationSource = "manual"
)

// ApprovedLocationSources lists the sources that participate in geo matching.
// Samples from other sources are stored but never targeted.
func ApprovedLocationSources() []LocationSource {
	return []LocationSource{LocationSourceGPS, LocationSourceZip, LocationSourceCity}
}

// LocationSample is a user's last known location from one source. A user may
// have multiple samples; all approved ones are candidates for geo matching.
type LocationSample struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the sample.
	UserID     uuid.UUID      `json:"user_id"`     // The account this sample belongs to.
	Latitude   float64        `json:"latitude"`    // Geographic latitude of the sample.
	Longitude  float64        `json:"longitude"`   // Geographic longitude of the sample.
	Source     LocationSource `json:"source"`      // How the sample was obtained (gps, zip, city, manual).
	RecordedAt time.Time      `json:"recorded_at"` // Timestamp of when the sample was recorded.
}
