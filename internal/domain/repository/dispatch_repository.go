package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"beacon/internal/domain/entity"
)

// DispatchRepository provides access to dispatch records and the counters the
// quota rules are evaluated against.
type DispatchRepository interface {
	// Create inserts a new dispatch.
	Create(ctx context.Context, dispatch *entity.Dispatch) error

	// GetByID retrieves a dispatch by its unique identifier.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dispatch, error)

	// Update persists mutable fields (content edits while pending, status
	// transitions, metadata counters).
	Update(ctx context.Context, dispatch *entity.Dispatch) error

	// Delete hard-removes a dispatch regardless of its status.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPending returns pending dispatches oldest-first for admin review.
	ListPending(ctx context.Context, limit, offset int) ([]*entity.Dispatch, error)

	// ListBySender returns a sender's dispatches newest-first.
	ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Dispatch, error)

	// CountBySenderSince counts a sender's dispatches of the given mode in any
	// of the given statuses created at or after since.
	CountBySenderSince(ctx context.Context, senderID uuid.UUID, mode entity.DispatchMode, statuses []entity.DispatchStatus, since time.Time) (int64, error)

	// LastCreatedAt returns the creation time of the sender's most recent
	// dispatch of the given mode, or nil when none exists.
	LastCreatedAt(ctx context.Context, senderID uuid.UUID, mode entity.DispatchMode) (*time.Time, error)
}
