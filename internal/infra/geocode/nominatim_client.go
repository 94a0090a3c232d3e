// Package geocode resolves postal addresses through a Nominatim-compatible
// search endpoint.
package geocode

import (
	"context"
	"strconv"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type nominatimClient struct {
	client *resty.Client
}

// searchResult is the subset of the Nominatim search response we consume.
// Coordinates arrive as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimClient creates a geocoder backed by a Nominatim search endpoint.
func NewNominatimClient(cfg *config.GeocodingConfig) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := "beacon-dispatch"

	client := resty.New()
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
		if cfg.Timeout > 0 {
			client.SetTimeout(cfg.Timeout)
		}
	}

	client.SetBaseURL(baseURL)
	// Public Nominatim instances reject requests without an identifying agent.
	client.SetHeader("User-Agent", userAgent)

	return &nominatimClient{client: client}
}

// Geocode returns the coordinates of the first match for address.
func (c *nominatimClient) Geocode(ctx context.Context, address string) (float64, float64, error) {
	var results []searchResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      address,
			"format": "json",
			"limit":  "1",
		}).
		SetResult(&results).
		Get("/search")
	if err != nil {
		return 0, 0, errors.Wrap(err, "geocoding request failed")
	}
	if resp.IsError() {
		return 0, 0, errors.Errorf("geocoding request returned status %d", resp.StatusCode())
	}
	if len(results) == 0 {
		return 0, 0, errors.Errorf("no geocoding result for address: %s", address)
	}

	latitude, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to parse latitude")
	}
	longitude, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to parse longitude")
	}

	return latitude, longitude, nil
}
