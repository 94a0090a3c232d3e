// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountKind classifies platform accounts for group targeting.
type AccountKind string

const (
	AccountKindIndividual   AccountKind = "individual"
	AccountKindBusiness     AccountKind = "business"
	AccountKindOrganization AccountKind = "organization"
)

// Account represents a platform account. Businesses and organizations can act
// as senders; every account can be a notification recipient.
type Account struct {
	ID             uuid.UUID   `json:"id"`               // The Global Unique Identifier (GUID) for the account.
	Kind           AccountKind `json:"kind"`             // Account kind (individual, business, organization).
	Name           string      `json:"name"`             // Display name (business name for business accounts).
	PlanTier       string      `json:"plan_tier"`        // Subscription plan tier, empty for non-business accounts.
	PlanSelectedAt *time.Time  `json:"plan_selected_at"` // When the plan was chosen; nil blocks business-initiated sends.
	Latitude       *float64    `json:"latitude"`         // Cached geographic latitude, nil until first resolution.
	Longitude      *float64    `json:"longitude"`        // Cached geographic longitude, nil until first resolution.
	Street         string      `json:"street"`           // Street line of the home address.
	City           string      `json:"city"`             // City of the home address.
	State          string      `json:"state"`            // State or region of the home address.
	Zip            string      `json:"zip"`              // Postal code of the home address.
	Country        string      `json:"country"`          // Country of the home address.
	CreatedAt      time.Time   `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt      time.Time   `json:"updated_at"`       // Timestamp of the last modification.
}

// HasPoint reports whether the account has a cached geographic point.
func (a *Account) HasPoint() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// AddressLine builds a single-line address from the structured fields,
// skipping blanks. An empty result means no usable address exists.
func (a *Account) AddressLine() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.Zip, a.Country} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}
