// Package service defines contracts for infrastructure collaborators.
package service

import (
	"context"

	"github.com/google/uuid"
)

// PushMessage is the payload delivered to user devices.
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

// PushReport summarizes a multicast delivery attempt.
type PushReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// PushSender delivers push notifications to users' registered devices.
// Implementations without credentials report zero counts and no error.
type PushSender interface {
	// SendToUsers multicasts msg to every active device of the given users.
	SendToUsers(ctx context.Context, userIDs []uuid.UUID, msg PushMessage) (PushReport, error)

	// Configured reports whether a real push provider is wired up.
	Configured() bool
}
