package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the admin approval workflow operations.
type ReviewUsecase interface {
	// ListPending returns dispatches awaiting review, oldest first.
	ListPending(ctx context.Context, limit, offset int) ([]*entity.Dispatch, error)

	// Approve re-validates a pending dispatch against the sender's current
	// plan and fans it out.
	Approve(ctx context.Context, dispatchID uuid.UUID) (*DispatchResult, error)

	// Reject marks a pending dispatch rejected. No fan-out happens.
	Reject(ctx context.Context, dispatchID uuid.UUID, reason string) (*entity.Dispatch, error)
}
