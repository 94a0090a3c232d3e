package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one per-recipient fan-out copy of a dispatch. Exactly one
// exists per (dispatch, recipient) pair; only ReadAt changes after creation.
type Notification struct {
	ID          uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the fan-out record.
	DispatchID  uuid.UUID         `json:"dispatch_id"`  // The dispatch this copy belongs to.
	RecipientID uuid.UUID         `json:"recipient_id"` // The account receiving this copy.
	Title       string            `json:"title"`        // Title denormalized from the dispatch.
	Body        string            `json:"body"`         // Body denormalized from the dispatch.
	URL         string            `json:"url"`          // Deep-link URL denormalized from the dispatch.
	Data        map[string]string `json:"data"`         // Payload linking back to the dispatch and sender.
	CreatedAt   time.Time         `json:"created_at"`   // Timestamp of when this record was created.
	ReadAt      *time.Time        `json:"read_at"`      // Set once by the recipient; nil while unread.
}

// DispatchDigest is a read-side grouping of fan-out records used for the
// follower-update history view: rows sharing title, body, URL and a minute
// bucket collapse into one entry.
type DispatchDigest struct {
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	URL            string    `json:"url"`
	MinuteBucket   time.Time `json:"minute_bucket"`
	RecipientCount int       `json:"recipient_count"`
}
