package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"
)

func createTestQuotaGuard(t *testing.T, plans map[string]config.PlanLimits) (*QuotaGuard, *mockRepo.MockDispatchRepository) {
	t.Helper()

	dispatches := mockRepo.NewMockDispatchRepository(t)
	guard := NewQuotaGuard(dispatches, &config.Config{Plans: plans})

	return guard, dispatches
}

func planWith(limits config.PlanLimits) map[string]config.PlanLimits {
	return map[string]config.PlanLimits{"basic": limits}
}

func testSender(tier string) *entity.Account {
	selectedAt := time.Now().Add(-time.Hour)

	return &entity.Account{
		ID:             uuid.New(),
		Kind:           entity.AccountKindBusiness,
		Name:           "Corner Bakery",
		PlanTier:       tier,
		PlanSelectedAt: &selectedAt,
	}
}

func TestLimitsFor(t *testing.T) {
	t.Parallel()

	guard, _ := createTestQuotaGuard(t, planWith(config.PlanLimits{MaxFollowerNotificationsPerDay: 3}))

	t.Run("returns limits for a known tier", func(t *testing.T) {
		limits, err := guard.LimitsFor(testSender("basic"))

		require.NoError(t, err)
		assert.Equal(t, 3, limits.MaxFollowerNotificationsPerDay)
	})

	t.Run("rejects sender without a plan tier", func(t *testing.T) {
		_, err := guard.LimitsFor(testSender(""))

		assert.ErrorIs(t, err, domainerrors.ErrPlanNotSelected)
	})

	t.Run("rejects sender who never confirmed a plan", func(t *testing.T) {
		sender := testSender("basic")
		sender.PlanSelectedAt = nil

		_, err := guard.LimitsFor(sender)

		assert.ErrorIs(t, err, domainerrors.ErrPlanNotSelected)
	})

	t.Run("rejects unknown plan tier", func(t *testing.T) {
		_, err := guard.LimitsFor(testSender("platinum"))

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "PLAN_NOT_SELECTED", appErr.ErrorCode())
	})
}

func TestCheckDirect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()
	now := time.Now()

	t.Run("passes when all caps are unlimited", func(t *testing.T) {
		guard, _ := createTestQuotaGuard(t, nil)

		err := guard.CheckDirect(ctx, senderID, config.PlanLimits{}, now)

		require.NoError(t, err)
	})

	t.Run("rejects when the daily cap is reached", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MaxFollowerNotificationsPerDay: 2}
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeDirect, quotaStatuses(), now.Add(-dailyWindow)).
			Return(int64(2), nil)

		err := guard.CheckDirect(ctx, senderID, limits, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "QUOTA_EXCEEDED", appErr.ErrorCode())
		assert.Equal(t, domainerrors.QuotaReasonDailyLimit, appErr.Details()["reason"])
	})

	t.Run("rejects when the weekly cap is reached", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{
			MaxFollowerNotificationsPerDay:  3,
			MaxFollowerNotificationsPerWeek: 10,
		}
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeDirect, quotaStatuses(), now.Add(-dailyWindow)).
			Return(int64(1), nil)
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeDirect, quotaStatuses(), now.Add(-weeklyWindow)).
			Return(int64(10), nil)

		err := guard.CheckDirect(ctx, senderID, limits, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domainerrors.QuotaReasonWeeklyLimit, appErr.Details()["reason"])
	})

	t.Run("rejects a send inside the minimum interval", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MinMinutesBetweenNotifications: 60}
		last := now.Add(-30 * time.Minute)
		dispatches.EXPECT().
			LastCreatedAt(ctx, senderID, entity.DispatchModeDirect).
			Return(&last, nil)

		err := guard.CheckDirect(ctx, senderID, limits, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domainerrors.QuotaReasonTooSoon, appErr.Details()["reason"])
		assert.Equal(t, 31, appErr.Details()["retry_minutes"])
	})

	t.Run("passes once the interval has elapsed", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MinMinutesBetweenNotifications: 60}
		last := now.Add(-61 * time.Minute)
		dispatches.EXPECT().
			LastCreatedAt(ctx, senderID, entity.DispatchModeDirect).
			Return(&last, nil)

		err := guard.CheckDirect(ctx, senderID, limits, now)

		require.NoError(t, err)
	})

	t.Run("passes a first-ever send with an interval configured", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MinMinutesBetweenNotifications: 60}
		dispatches.EXPECT().
			LastCreatedAt(ctx, senderID, entity.DispatchModeDirect).
			Return(nil, nil)

		err := guard.CheckDirect(ctx, senderID, limits, now)

		require.NoError(t, err)
	})
}

func TestCheckBlast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()
	now := time.Now()
	radius := 5.0

	t.Run("rejects tiers without area blasts", func(t *testing.T) {
		guard, _ := createTestQuotaGuard(t, nil)

		err := guard.CheckBlast(ctx, senderID, config.PlanLimits{}, &radius, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domainerrors.QuotaReasonBlastsOff, appErr.Details()["reason"])
	})

	t.Run("rejects when the monthly cap is reached", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MaxAreaBlastsPerMonth: 2}
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), now.Add(-monthlyWindow)).
			Return(int64(2), nil)

		err := guard.CheckBlast(ctx, senderID, limits, &radius, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domainerrors.QuotaReasonMonthlyBlasts, appErr.Details()["reason"])
	})

	t.Run("rejects a radius over the plan cap", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MaxAreaBlastsPerMonth: 5, MaxBlastRadiusMiles: 10}
		tooWide := 10.5
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), now.Add(-monthlyWindow)).
			Return(int64(1), nil)

		err := guard.CheckBlast(ctx, senderID, limits, &tooWide, now)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "RADIUS_EXCEEDS_PLAN", appErr.ErrorCode())
		assert.Equal(t, 10.5, appErr.Details()["requested_radius_miles"])
	})

	t.Run("passes a blast within all caps", func(t *testing.T) {
		guard, dispatches := createTestQuotaGuard(t, nil)
		limits := config.PlanLimits{MaxAreaBlastsPerMonth: 5, MaxBlastRadiusMiles: 10}
		dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), now.Add(-monthlyWindow)).
			Return(int64(1), nil)

		err := guard.CheckBlast(ctx, senderID, limits, &radius, now)

		require.NoError(t, err)
	})
}

func TestValidateRadius(t *testing.T) {
	t.Parallel()

	guard, _ := createTestQuotaGuard(t, nil)

	t.Run("uncapped plan allows an unlimited radius", func(t *testing.T) {
		assert.NoError(t, guard.ValidateRadius(config.PlanLimits{}, nil))
	})

	t.Run("capped plan rejects an unlimited radius", func(t *testing.T) {
		err := guard.ValidateRadius(config.PlanLimits{MaxBlastRadiusMiles: 25}, nil)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "RADIUS_EXCEEDS_PLAN", appErr.ErrorCode())
		assert.Equal(t, 25.0, appErr.Details()["max_radius_miles"])
	})

	t.Run("radius equal to the cap passes", func(t *testing.T) {
		radius := 25.0

		assert.NoError(t, guard.ValidateRadius(config.PlanLimits{MaxBlastRadiusMiles: 25}, &radius))
	})
}
