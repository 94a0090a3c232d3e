package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	accounts   repository.AccountRepository
	dispatches repository.DispatchRepository
	quota      *QuotaGuard
	engine     *FanoutEngine
	logger     *slog.Logger
}

// NewReviewService creates the admin approval workflow use case.
func NewReviewService(
	accounts repository.AccountRepository,
	dispatches repository.DispatchRepository,
	quota *QuotaGuard,
	engine *FanoutEngine,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		accounts:   accounts,
		dispatches: dispatches,
		quota:      quota,
		engine:     engine,
		logger:     logger,
	}
}

// ListPending returns dispatches awaiting review, oldest first.
func (s *reviewService) ListPending(ctx context.Context, limit, offset int) ([]*entity.Dispatch, error) {
	return s.dispatches.ListPending(ctx, limit, offset)
}

// Approve re-validates the radius against the sender's current plan, marks
// the dispatch approved and fans it out. The plan may have changed since
// submission, so the cap is checked again here.
func (s *reviewService) Approve(ctx context.Context, dispatchID uuid.UUID) (*usecase.DispatchResult, error) {
	dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return nil, err
	}
	if dispatch.Status != entity.DispatchStatusPending {
		return nil, domainerrors.ErrInvalidState.WithMessage("only pending dispatches can be approved")
	}

	sender, err := s.accounts.GetByID(ctx, dispatch.SenderID)
	if err != nil {
		return nil, err
	}

	limits, err := s.quota.LimitsFor(sender)
	if err != nil {
		return nil, err
	}
	if dispatch.Mode == entity.DispatchModeBlast {
		if err := s.quota.ValidateRadius(limits, dispatch.RadiusMiles); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	dispatch.Status = entity.DispatchStatusApproved
	dispatch.ApprovedAt = &now

	s.logger.LogAttrs(ctx, slog.LevelInfo, "dispatch approved",
		slog.String("dispatchId", dispatch.ID.String()),
		slog.String("senderId", dispatch.SenderID.String()),
	)

	return s.engine.FanOut(ctx, dispatch)
}

// Reject marks a pending dispatch rejected. No fan-out happens and the
// dispatch no longer counts toward the sender's quota.
func (s *reviewService) Reject(ctx context.Context, dispatchID uuid.UUID, reason string) (*entity.Dispatch, error) {
	dispatch, err := s.dispatches.GetByID(ctx, dispatchID)
	if err != nil {
		return nil, err
	}
	if dispatch.Status != entity.DispatchStatusPending {
		return nil, domainerrors.ErrInvalidState.WithMessage("only pending dispatches can be rejected")
	}

	dispatch.Status = entity.DispatchStatusRejected
	if reason != "" {
		if dispatch.Metadata == nil {
			dispatch.Metadata = make(map[string]string)
		}
		dispatch.Metadata["rejection_reason"] = reason
	}

	if err := s.dispatches.Update(ctx, dispatch); err != nil {
		return nil, err
	}

	return dispatch, nil
}
