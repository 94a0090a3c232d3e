package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockService "beacon/internal/mocks/service"
	"beacon/internal/usecase"
)

type reviewServiceMocks struct {
	accounts      *mockRepo.MockAccountRepository
	dispatches    *mockRepo.MockDispatchRepository
	notifications *mockRepo.MockNotificationRepository
	locations     *mockRepo.MockLocationRepository
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	push          *mockService.MockPushSender
	publisher     *mockService.MockEventPublisher
}

func createTestReviewService(t *testing.T, plans map[string]config.PlanLimits) (usecase.ReviewUsecase, *reviewServiceMocks) {
	t.Helper()

	mocks := &reviewServiceMocks{
		accounts:      mockRepo.NewMockAccountRepository(t),
		dispatches:    mockRepo.NewMockDispatchRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		locations:     mockRepo.NewMockLocationRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		push:          mockService.NewMockPushSender(t),
		publisher:     mockService.NewMockEventPublisher(t),
	}

	cfg := &config.Config{Plans: plans}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	quota := NewQuotaGuard(mocks.dispatches, cfg)
	audience := NewAudienceResolver(mocks.accounts, mocks.locations)
	engine := NewFanoutEngine(mocks.txManager, mocks.dispatches, audience, mocks.push, mocks.publisher, logger)

	svc := NewReviewService(mocks.accounts, mocks.dispatches, quota, engine, logger)

	return svc, mocks
}

func pendingBlast(senderID uuid.UUID, radiusMiles float64) *entity.Dispatch {
	latitude, longitude := 40.7128, -74.006

	return &entity.Dispatch{
		ID:          uuid.New(),
		SenderID:    senderID,
		Mode:        entity.DispatchModeBlast,
		Title:       "Grand opening",
		Body:        "Free coffee all day.",
		Targets:     entity.TargetGroups{Individuals: true},
		CenterLat:   &latitude,
		CenterLon:   &longitude,
		RadiusMiles: &radiusMiles,
		Channel:     entity.ChannelBoth,
		Status:      entity.DispatchStatusPending,
		Metadata:    map[string]string{"business_name": "Corner Bakery"},
	}
}

func TestApprove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	plans := map[string]config.PlanLimits{
		"basic": {MaxAreaBlastsPerMonth: 2, MaxBlastRadiusMiles: 10},
	}

	t.Run("approves and fans out a pending blast", func(t *testing.T) {
		svc, mocks := createTestReviewService(t, plans)
		senderID := uuid.New()
		alice := uuid.New()
		dispatch := pendingBlast(senderID, 5)
		mocks.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)
		sender := testSender("basic")
		sender.ID = senderID
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.accounts.EXPECT().ListIDsByKinds(ctx, mock.Anything).Return([]uuid.UUID{alice}, nil)
		mocks.locations.EXPECT().ListApprovedWithinBound(ctx, mock.Anything).
			Return([]*entity.LocationSample{
				{UserID: alice, Latitude: 40.72, Longitude: -74.0, Source: entity.LocationSourceGPS},
			}, nil)
		mocks.txManager.EXPECT().Execute(ctx, mock.Anything).
			Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(mocks.factory)
			})
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, dispatch).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{Sent: 1}, nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Approve(ctx, dispatch.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.NotNil(t, result.Dispatch.ApprovedAt)
		assert.Equal(t, 1, result.Matched)
	})

	t.Run("only pending dispatches can be approved", func(t *testing.T) {
		svc, mocks := createTestReviewService(t, plans)
		dispatch := pendingBlast(uuid.New(), 5)
		dispatch.Status = entity.DispatchStatusSent
		mocks.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)

		_, err := svc.Approve(ctx, dispatch.ID)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
	})

	t.Run("re-checks the radius against the current plan", func(t *testing.T) {
		svc, mocks := createTestReviewService(t, plans)
		senderID := uuid.New()
		dispatch := pendingBlast(senderID, 15)
		mocks.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)
		sender := testSender("basic")
		sender.ID = senderID
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)

		_, err := svc.Approve(ctx, dispatch.ID)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "RADIUS_EXCEEDS_PLAN", appErr.ErrorCode())
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rejects a pending dispatch with a reason", func(t *testing.T) {
		svc, mocks := createTestReviewService(t, nil)
		dispatch := pendingBlast(uuid.New(), 5)
		mocks.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)
		mocks.dispatches.EXPECT().Update(ctx, dispatch).Return(nil)

		rejected, err := svc.Reject(ctx, dispatch.ID, "misleading content")

		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusRejected, rejected.Status)
		assert.Equal(t, "misleading content", rejected.Metadata["rejection_reason"])
	})

	t.Run("only pending dispatches can be rejected", func(t *testing.T) {
		svc, mocks := createTestReviewService(t, nil)
		dispatch := pendingBlast(uuid.New(), 5)
		dispatch.Status = entity.DispatchStatusRejected
		mocks.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)

		_, err := svc.Reject(ctx, dispatch.ID, "")

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
	})
}
