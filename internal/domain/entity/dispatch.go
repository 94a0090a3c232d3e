package entity

import (
	"time"

	"github.com/google/uuid"
)

// DispatchMode distinguishes follower updates from geo-targeted area blasts.
type DispatchMode string

const (
	// DispatchModeDirect is a business update sent to explicit recipients or groups.
	DispatchModeDirect DispatchMode = "direct"
	// DispatchModeBlast is a geo-radius area blast.
	DispatchModeBlast DispatchMode = "blast"
)

// DispatchStatus models the approval workflow state machine.
type DispatchStatus string

const (
	DispatchStatusPending  DispatchStatus = "pending"
	DispatchStatusApproved DispatchStatus = "approved"
	DispatchStatusRejected DispatchStatus = "rejected"
	DispatchStatusSent     DispatchStatus = "sent"
)

// IsTerminal reports whether the status permits no further transitions
// other than deletion.
func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchStatusSent || s == DispatchStatusRejected
}

// DeliveryChannel selects where fan-out copies are delivered.
type DeliveryChannel string

const (
	ChannelInApp DeliveryChannel = "in_app"
	ChannelPush  DeliveryChannel = "push"
	ChannelBoth  DeliveryChannel = "both"
)

// IncludesPush reports whether the channel requires push delivery.
func (c DeliveryChannel) IncludesPush() bool {
	return c == ChannelPush || c == ChannelBoth
}

// IncludesInApp reports whether the channel requires in-app fan-out rows.
func (c DeliveryChannel) IncludesInApp() bool {
	return c == ChannelInApp || c == ChannelBoth
}

// TargetGroups selects recipient groups by account kind.
type TargetGroups struct {
	Organizations bool `json:"organizations"`
	Businesses    bool `json:"businesses"`
	Individuals   bool `json:"individuals"`
}

// Any reports whether at least one group is selected.
func (t TargetGroups) Any() bool {
	return t.Organizations || t.Businesses || t.Individuals
}

// Kinds returns the selected groups as account kinds.
func (t TargetGroups) Kinds() []AccountKind {
	kinds := make([]AccountKind, 0, 3)
	if t.Organizations {
		kinds = append(kinds, AccountKindOrganization)
	}
	if t.Businesses {
		kinds = append(kinds, AccountKindBusiness)
	}
	if t.Individuals {
		kinds = append(kinds, AccountKindIndividual)
	}

	return kinds
}

// Dispatch represents one requested notification send event.
// It is immutable once sent, except for metadata counters.
type Dispatch struct {
	ID          uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the dispatch.
	SenderID    uuid.UUID         `json:"sender_id"`    // The account that requested the send.
	Mode        DispatchMode      `json:"mode"`         // direct (business update) or blast (area blast).
	Title       string            `json:"title"`        // Notification title, at most 140 characters.
	Body        string            `json:"body"`         // Notification body, at most 1000 characters.
	URL         string            `json:"url"`          // Optional deep-link URL.
	Targets     TargetGroups      `json:"targets"`      // Group selector; ignored when ReceiverIDs is set.
	ReceiverIDs []uuid.UUID       `json:"receiver_ids"` // Explicit recipient list; overrides group targeting.
	CenterLat   *float64          `json:"center_lat"`   // Blast center latitude, nil for non-geo dispatches.
	CenterLon   *float64          `json:"center_lon"`   // Blast center longitude, nil for non-geo dispatches.
	RadiusMiles *float64          `json:"radius_miles"` // Blast radius in miles; nil means unlimited.
	Channel     DeliveryChannel   `json:"channel"`      // in_app, push, or both.
	Status      DispatchStatus    `json:"status"`       // Approval workflow state.
	Metadata    map[string]string `json:"metadata"`     // Free-form counters (business_name, matched_count, push_sent).
	CreatedAt   time.Time         `json:"created_at"`   // Timestamp of when this record was created.
	ApprovedAt  *time.Time        `json:"approved_at"`  // Timestamp of admin approval, nil until approved.
	SentAt      *time.Time        `json:"sent_at"`      // Timestamp of fan-out completion, nil until sent.
}

// MaxTitleLength and MaxBodyLength cap dispatch content.
const (
	MaxTitleLength = 140
	MaxBodyLength  = 1000
)
