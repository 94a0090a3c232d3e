// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	dailyWindow   = 24 * time.Hour
	weeklyWindow  = 7 * 24 * time.Hour
	monthlyWindow = 30 * 24 * time.Hour
)

// quotaStatuses lists the dispatch statuses that consume quota. Rejected
// dispatches do not count against the sender.
func quotaStatuses() []entity.DispatchStatus {
	return []entity.DispatchStatus{
		entity.DispatchStatusPending,
		entity.DispatchStatusApproved,
		entity.DispatchStatusSent,
	}
}

// QuotaGuard evaluates plan-based sending limits. Rules are checked in a
// fixed order and the first violated rule is reported.
//
// Checks read counters without locking, so two concurrent sends from the
// same sender can both pass a limit of one. The window sizes make this
// drift harmless in practice.
type QuotaGuard struct {
	dispatches repository.DispatchRepository
	plans      map[string]config.PlanLimits
}

// NewQuotaGuard creates a quota guard backed by the configured plan table.
func NewQuotaGuard(dispatches repository.DispatchRepository, cfg *config.Config) *QuotaGuard {
	return &QuotaGuard{
		dispatches: dispatches,
		plans:      cfg.Plans,
	}
}

// LimitsFor returns the sending limits of the sender's plan. Senders without
// a selected plan cannot send at all.
func (g *QuotaGuard) LimitsFor(sender *entity.Account) (config.PlanLimits, error) {
	if sender.PlanTier == "" || sender.PlanSelectedAt == nil {
		return config.PlanLimits{}, domainerrors.ErrPlanNotSelected
	}

	limits, ok := g.plans[sender.PlanTier]
	if !ok {
		return config.PlanLimits{}, domainerrors.ErrPlanNotSelected.WithMessage("unknown plan tier: " + sender.PlanTier)
	}

	return limits, nil
}

// CheckDirect enforces the follower-update rules: daily cap, weekly cap,
// then minimum interval. A zero cap means unlimited.
func (g *QuotaGuard) CheckDirect(ctx context.Context, senderID uuid.UUID, limits config.PlanLimits, now time.Time) error {
	if limits.MaxFollowerNotificationsPerDay > 0 {
		count, err := g.dispatches.CountBySenderSince(ctx, senderID, entity.DispatchModeDirect, quotaStatuses(), now.Add(-dailyWindow))
		if err != nil {
			return errors.Wrap(err, "failed to count daily dispatches")
		}
		if count >= int64(limits.MaxFollowerNotificationsPerDay) {
			return domainerrors.QuotaExceeded(domainerrors.QuotaReasonDailyLimit, map[string]any{
				"limit": limits.MaxFollowerNotificationsPerDay,
				"used":  count,
			})
		}
	}

	if limits.MaxFollowerNotificationsPerWeek > 0 {
		count, err := g.dispatches.CountBySenderSince(ctx, senderID, entity.DispatchModeDirect, quotaStatuses(), now.Add(-weeklyWindow))
		if err != nil {
			return errors.Wrap(err, "failed to count weekly dispatches")
		}
		if count >= int64(limits.MaxFollowerNotificationsPerWeek) {
			return domainerrors.QuotaExceeded(domainerrors.QuotaReasonWeeklyLimit, map[string]any{
				"limit": limits.MaxFollowerNotificationsPerWeek,
				"used":  count,
			})
		}
	}

	if limits.MinMinutesBetweenNotifications > 0 {
		last, err := g.dispatches.LastCreatedAt(ctx, senderID, entity.DispatchModeDirect)
		if err != nil {
			return errors.Wrap(err, "failed to find last dispatch time")
		}
		if last != nil {
			minInterval := time.Duration(limits.MinMinutesBetweenNotifications) * time.Minute
			elapsed := now.Sub(*last)
			if elapsed < minInterval {
				return domainerrors.QuotaExceeded(domainerrors.QuotaReasonTooSoon, map[string]any{
					"min_minutes":   limits.MinMinutesBetweenNotifications,
					"retry_minutes": int((minInterval - elapsed).Minutes()) + 1,
				})
			}
		}
	}

	return nil
}

// CheckBlast enforces the area-blast rules: blasts enabled, monthly cap,
// then radius cap. Pending and approved blasts count toward the monthly cap
// so parked dispatches cannot be stacked.
func (g *QuotaGuard) CheckBlast(ctx context.Context, senderID uuid.UUID, limits config.PlanLimits, radiusMiles *float64, now time.Time) error {
	if limits.MaxAreaBlastsPerMonth <= 0 {
		return domainerrors.QuotaExceeded(domainerrors.QuotaReasonBlastsOff, nil)
	}

	count, err := g.dispatches.CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), now.Add(-monthlyWindow))
	if err != nil {
		return errors.Wrap(err, "failed to count monthly blasts")
	}
	if count >= int64(limits.MaxAreaBlastsPerMonth) {
		return domainerrors.QuotaExceeded(domainerrors.QuotaReasonMonthlyBlasts, map[string]any{
			"limit": limits.MaxAreaBlastsPerMonth,
			"used":  count,
		})
	}

	return g.ValidateRadius(limits, radiusMiles)
}

// ValidateRadius checks a blast radius against the plan cap. An unlimited
// radius only passes when the plan carries no cap. The approval workflow
// re-runs this check against the sender's current plan.
func (g *QuotaGuard) ValidateRadius(limits config.PlanLimits, radiusMiles *float64) error {
	if limits.MaxBlastRadiusMiles <= 0 {
		return nil
	}

	if radiusMiles == nil || *radiusMiles > limits.MaxBlastRadiusMiles {
		details := map[string]any{
			"max_radius_miles": limits.MaxBlastRadiusMiles,
		}
		if radiusMiles != nil {
			details["requested_radius_miles"] = *radiusMiles
		}

		return domainerrors.ErrRadiusExceedsPlan.WithDetails(details)
	}

	return nil
}
