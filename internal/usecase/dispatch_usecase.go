// Package usecase defines the application's use case boundaries.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchRequest carries the sender's input for a new dispatch.
// Unlimited skips the geo filter entirely and is mutually exclusive with
// RadiusMiles. An explicit Lat/Lon pair overrides the sender's resolved
// address as the blast center.
type DispatchRequest struct {
	Mode        entity.DispatchMode    `json:"mode"`
	Title       string                 `json:"title"`
	Body        string                 `json:"body"`
	URL         string                 `json:"url"`
	Targets     entity.TargetGroups    `json:"targets"`
	ReceiverIDs []uuid.UUID            `json:"receiver_ids"`
	Lat         *float64               `json:"lat"`
	Lon         *float64               `json:"lon"`
	RadiusMiles *float64               `json:"radius_miles"`
	Unlimited   bool                   `json:"unlimited"`
	Channel     entity.DeliveryChannel `json:"channel"`
}

// UpdateDispatchRequest carries the editable fields of a pending dispatch.
// Nil fields are left unchanged.
type UpdateDispatchRequest struct {
	Title       *string  `json:"title"`
	Body        *string  `json:"body"`
	RadiusMiles *float64 `json:"radius_miles"`
}

// DispatchResult reports the outcome of a submit or approve operation.
type DispatchResult struct {
	Dispatch         *entity.Dispatch `json:"dispatch"`
	RequiresApproval bool             `json:"requires_approval"`
	Matched          int              `json:"matched"`
	PushSent         int              `json:"push_sent"`
	PushFailed       int              `json:"push_failed"`
}

// DispatchUsecase defines the sender-facing dispatch operations.
type DispatchUsecase interface {
	// Submit validates, quota-checks and either fans out a dispatch
	// immediately or parks it pending approval. Admin broadcasts bypass the
	// plan gate, quota checks and the approval workflow entirely.
	Submit(ctx context.Context, senderID uuid.UUID, isAdmin bool, req *DispatchRequest) (*DispatchResult, error)

	// UpdatePending edits the title, body or radius of a dispatch that has
	// not been reviewed yet. Senders may edit their own pending dispatches;
	// admins may edit any.
	UpdatePending(ctx context.Context, actorID uuid.UUID, isAdmin bool, dispatchID uuid.UUID, req *UpdateDispatchRequest) (*entity.Dispatch, error)

	// Delete hard-removes a dispatch from any state. Senders may delete
	// their own dispatches; admins may delete any.
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, dispatchID uuid.UUID) error

	// History returns the sender's delivered updates grouped by content and
	// creation minute.
	History(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.DispatchDigest, error)

	// ShareQR renders a QR code deep-linking to the dispatch.
	ShareQR(ctx context.Context, senderID, dispatchID uuid.UUID, size int) ([]byte, error)
}
