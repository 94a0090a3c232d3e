package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published on the dispatch topic.
const (
	EventDispatchSent     = "dispatch.sent"
	EventDispatchRejected = "dispatch.rejected"
)

// DispatchEvent announces a dispatch lifecycle change to downstream consumers.
type DispatchEvent struct {
	Type       string    `json:"type"`
	DispatchID uuid.UUID `json:"dispatch_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	Recipients int       `json:"recipients"`
	PushSent   int       `json:"push_sent"`
	PushFailed int       `json:"push_failed"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes dispatch lifecycle events. Publishing is
// best-effort; failures are logged and never fail the dispatch.
type EventPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
	Close() error
}
