package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
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

type dispatchServiceMocks struct {
	accounts      *mockRepo.MockAccountRepository
	dispatches    *mockRepo.MockDispatchRepository
	notifications *mockRepo.MockNotificationRepository
	locations     *mockRepo.MockLocationRepository
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	geocoder      *mockService.MockGeocoder
	push          *mockService.MockPushSender
	publisher     *mockService.MockEventPublisher
	qrGenerator   *mockService.MockQRCodeGenerator
}

func createTestDispatchService(t *testing.T, plans map[string]config.PlanLimits) (usecase.DispatchUsecase, *dispatchServiceMocks) {
	t.Helper()

	mocks := &dispatchServiceMocks{
		accounts:      mockRepo.NewMockAccountRepository(t),
		dispatches:    mockRepo.NewMockDispatchRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		locations:     mockRepo.NewMockLocationRepository(t),
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		geocoder:      mockService.NewMockGeocoder(t),
		push:          mockService.NewMockPushSender(t),
		publisher:     mockService.NewMockEventPublisher(t),
		qrGenerator:   mockService.NewMockQRCodeGenerator(t),
	}

	cfg := &config.Config{
		Plans: plans,
		Dispatch: &config.DispatchConfig{
			DefaultRadiusMiles: 10,
			DefaultPageSize:    20,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	quota := NewQuotaGuard(mocks.dispatches, cfg)
	address := NewAddressResolver(mocks.accounts, mocks.geocoder, logger)
	audience := NewAudienceResolver(mocks.accounts, mocks.locations)
	engine := NewFanoutEngine(mocks.txManager, mocks.dispatches, audience, mocks.push, mocks.publisher, logger)

	svc := NewDispatchService(
		mocks.accounts,
		mocks.dispatches,
		mocks.notifications,
		quota,
		address,
		engine,
		mocks.qrGenerator,
		cfg,
		logger,
	)

	return svc, mocks
}

// expectTransaction wires the transaction manager mock to run the fan-out
// callback against the factory mock.
func (m *dispatchServiceMocks) expectTransaction(ctx context.Context) {
	m.txManager.EXPECT().Execute(ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func unlimitedPlan() map[string]config.PlanLimits {
	return map[string]config.PlanLimits{
		"pro": {
			MaxAreaBlastsPerMonth: 10,
			MaxBlastRadiusMiles:   25,
		},
	}
}

func businessSender(id uuid.UUID) *entity.Account {
	sender := testSender("pro")
	sender.ID = id
	sender.Name = "Corner Bakery"

	return sender
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()

	cases := []struct {
		name string
		req  *usecase.DispatchRequest
	}{
		{
			name: "unknown mode",
			req:  &usecase.DispatchRequest{Mode: "broadcast", Title: "t", Body: "b"},
		},
		{
			name: "empty title",
			req:  &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "  ", Body: "b"},
		},
		{
			name: "empty body",
			req:  &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: ""},
		},
		{
			name: "unknown channel",
			req:  &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: "b", Channel: "sms"},
		},
		{
			name: "radius with unlimited flag",
			req: func() *usecase.DispatchRequest {
				radius := 5.0

				return &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: "b", RadiusMiles: &radius, Unlimited: true}
			}(),
		},
		{
			name: "non-positive radius",
			req: func() *usecase.DispatchRequest {
				radius := 0.0

				return &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: "b", RadiusMiles: &radius}
			}(),
		},
		{
			name: "direct without receivers or groups",
			req:  &usecase.DispatchRequest{Mode: entity.DispatchModeDirect, Title: "t", Body: "b"},
		},
		{
			name: "lat without lon",
			req: func() *usecase.DispatchRequest {
				latitude := 40.7

				return &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: "b", Lat: &latitude}
			}(),
		},
		{
			name: "out-of-range center",
			req: func() *usecase.DispatchRequest {
				latitude, longitude := 91.0, 0.0

				return &usecase.DispatchRequest{Mode: entity.DispatchModeBlast, Title: "t", Body: "b", Lat: &latitude, Lon: &longitude}
			}(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := createTestDispatchService(t, unlimitedPlan())

			_, err := svc.Submit(ctx, senderID, false, tc.req)

			appErr, ok := domainerrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
		})
	}
}

func TestSubmitDirect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()

	t.Run("individual accounts cannot send", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		individual := testSender("pro")
		individual.ID = senderID
		individual.Kind = entity.AccountKindIndividual
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(individual, nil)

		_, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:        entity.DispatchModeDirect,
			Title:       "Fresh sourdough",
			Body:        "Out of the oven at noon.",
			ReceiverIDs: []uuid.UUID{uuid.New()},
		})

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	})

	t.Run("push-only dispatch fails when push is unconfigured", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		mocks.push.EXPECT().Configured().Return(false)

		_, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:        entity.DispatchModeDirect,
			Title:       "Fresh sourdough",
			Body:        "Out of the oven at noon.",
			Channel:     entity.ChannelPush,
			ReceiverIDs: []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, domainerrors.ErrPushNotConfigured)
	})

	t.Run("fans out to explicit receivers and pushes", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		alice := uuid.New()
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(businessSender(senderID), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{Sent: 1}, nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:        entity.DispatchModeDirect,
			Title:       "Fresh sourdough",
			Body:        "Out of the oven at noon.",
			ReceiverIDs: []uuid.UUID{alice},
		})

		require.NoError(t, err)
		assert.False(t, result.RequiresApproval)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.Equal(t, 1, result.Matched)
		assert.Equal(t, 1, result.PushSent)
		assert.Equal(t, "Corner Bakery", result.Dispatch.Metadata["business_name"])
		assert.Equal(t, "1", result.Dispatch.Metadata["matched_count"])
	})

	t.Run("push failure does not fail the dispatch", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		alice := uuid.New()
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(businessSender(senderID), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{}, errors.New("fcm unavailable"))
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:        entity.DispatchModeDirect,
			Title:       "Fresh sourdough",
			Body:        "Out of the oven at noon.",
			ReceiverIDs: []uuid.UUID{alice},
		})

		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.Equal(t, 1, result.PushFailed)
	})
}

func TestSubmitAdminBroadcast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminID := uuid.New()

	t.Run("broadcasts without a plan or quota checks", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		alice := uuid.New()
		// Platform admins send from accounts that never selected a plan.
		admin := &entity.Account{ID: adminID, Kind: entity.AccountKindOrganization, Name: "Platform Ops"}
		mocks.accounts.EXPECT().GetByID(ctx, adminID).Return(admin, nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{Sent: 1}, nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, adminID, true, &usecase.DispatchRequest{
			Mode:        entity.DispatchModeDirect,
			Title:       "Scheduled maintenance",
			Body:        "The platform will be down tonight.",
			ReceiverIDs: []uuid.UUID{alice},
		})

		require.NoError(t, err)
		assert.False(t, result.RequiresApproval)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.Equal(t, 1, result.Matched)
	})

	t.Run("admin blasts bypass the approval workflow", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		alice := uuid.New()
		admin := &entity.Account{ID: adminID, Kind: entity.AccountKindOrganization, Name: "Platform Ops"}
		mocks.accounts.EXPECT().GetByID(ctx, adminID).Return(admin, nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.accounts.EXPECT().ListIDsByKinds(ctx, mock.Anything).Return([]uuid.UUID{alice}, nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{Sent: 1}, nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, adminID, true, &usecase.DispatchRequest{
			Mode:      entity.DispatchModeBlast,
			Title:     "Scheduled maintenance",
			Body:      "The platform will be down tonight.",
			Unlimited: true,
		})

		require.NoError(t, err)
		assert.False(t, result.RequiresApproval)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
	})
}

func TestSubmitBlast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()

	t.Run("parks the blast when the plan requires approval", func(t *testing.T) {
		plans := map[string]config.PlanLimits{
			"pro": {
				MaxAreaBlastsPerMonth:     10,
				MaxBlastRadiusMiles:       25,
				AreaBlastRequiresApproval: true,
			},
		}
		svc, mocks := createTestDispatchService(t, plans)
		sender := businessSender(senderID)
		latitude, longitude := 40.7128, -74.006
		sender.Latitude = &latitude
		sender.Longitude = &longitude
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), mock.Anything).
			Return(int64(0), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:  entity.DispatchModeBlast,
			Title: "Grand opening",
			Body:  "Free coffee all day.",
		})

		require.NoError(t, err)
		assert.True(t, result.RequiresApproval)
		assert.Equal(t, entity.DispatchStatusPending, result.Dispatch.Status)
		require.NotNil(t, result.Dispatch.RadiusMiles)
		assert.Equal(t, 10.0, *result.Dispatch.RadiusMiles)
		assert.Equal(t, latitude, *result.Dispatch.CenterLat)
	})

	t.Run("empty audience still marks the dispatch sent", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		sender := businessSender(senderID)
		latitude, longitude := 40.7128, -74.006
		sender.Latitude = &latitude
		sender.Longitude = &longitude
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), mock.Anything).
			Return(int64(0), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.accounts.EXPECT().ListIDsByKinds(ctx, mock.Anything).Return(nil, nil)
		mocks.locations.EXPECT().ListApprovedWithinBound(ctx, mock.Anything).Return(nil, nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:  entity.DispatchModeBlast,
			Title: "Grand opening",
			Body:  "Free coffee all day.",
		})

		require.NoError(t, err)
		assert.False(t, result.RequiresApproval)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.Zero(t, result.Matched)
		assert.Zero(t, result.PushSent)
	})

	t.Run("unlimited radius skips address resolution and the geo filter", func(t *testing.T) {
		plans := map[string]config.PlanLimits{
			"pro": {MaxAreaBlastsPerMonth: 5},
		}
		svc, mocks := createTestDispatchService(t, plans)
		alice := uuid.New()
		// No cached point and no address on file; unlimited mode must not care.
		sender := businessSender(senderID)
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), mock.Anything).
			Return(int64(0), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.accounts.EXPECT().ListIDsByKinds(ctx, mock.Anything).Return([]uuid.UUID{alice}, nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Notifications().Return(mocks.notifications)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.notifications.EXPECT().CreateInBatches(ctx, mock.Anything, fanoutBatchSize).Return(nil)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		mocks.push.EXPECT().SendToUsers(ctx, []uuid.UUID{alice}, mock.Anything).
			Return(service.PushReport{Sent: 1}, nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:      entity.DispatchModeBlast,
			Title:     "Grand opening",
			Body:      "Free coffee all day.",
			Targets:   entity.TargetGroups{Individuals: true},
			Unlimited: true,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.DispatchStatusSent, result.Dispatch.Status)
		assert.Equal(t, 1, result.Matched)
		assert.Nil(t, result.Dispatch.CenterLat)
		assert.Nil(t, result.Dispatch.RadiusMiles)
	})

	t.Run("request coordinates override the sender address", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		// No cached point and no address; the explicit center must make
		// address resolution unnecessary.
		sender := businessSender(senderID)
		latitude, longitude := 34.0522, -118.2437
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), mock.Anything).
			Return(int64(0), nil)
		mocks.dispatches.EXPECT().Create(ctx, mock.Anything).Return(nil)
		mocks.accounts.EXPECT().ListIDsByKinds(ctx, mock.Anything).Return(nil, nil)
		mocks.locations.EXPECT().ListApprovedWithinBound(ctx, mock.Anything).Return(nil, nil)
		mocks.expectTransaction(ctx)
		mocks.factory.EXPECT().Dispatches().Return(mocks.dispatches)
		mocks.dispatches.EXPECT().Update(ctx, mock.Anything).Return(nil)
		mocks.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		result, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:  entity.DispatchModeBlast,
			Title: "Grand opening",
			Body:  "Free coffee all day.",
			Lat:   &latitude,
			Lon:   &longitude,
		})

		require.NoError(t, err)
		require.NotNil(t, result.Dispatch.CenterLat)
		assert.Equal(t, latitude, *result.Dispatch.CenterLat)
		assert.Equal(t, longitude, *result.Dispatch.CenterLon)
	})

	t.Run("rejects a sender without a usable address", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		sender := businessSender(senderID)
		mocks.accounts.EXPECT().GetByID(ctx, senderID).Return(sender, nil)
		mocks.dispatches.EXPECT().
			CountBySenderSince(ctx, senderID, entity.DispatchModeBlast, quotaStatuses(), mock.Anything).
			Return(int64(0), nil)

		_, err := svc.Submit(ctx, senderID, false, &usecase.DispatchRequest{
			Mode:  entity.DispatchModeBlast,
			Title: "Grand opening",
			Body:  "Free coffee all day.",
		})

		assert.ErrorIs(t, err, domainerrors.ErrMissingAddress)
	})
}

func TestUpdatePending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()
	dispatchID := uuid.New()

	t.Run("edits a pending dispatch", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{
			ID:       dispatchID,
			SenderID: senderID,
			Status:   entity.DispatchStatusPending,
			Title:    "old",
			Body:     "old body",
		}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		mocks.dispatches.EXPECT().Update(ctx, dispatch).Return(nil)
		title := "Updated title"

		updated, err := svc.UpdatePending(ctx, senderID, false, dispatchID, &usecase.UpdateDispatchRequest{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, "Updated title", updated.Title)
		assert.Equal(t, "old body", updated.Body)
	})

	t.Run("admins may edit any pending dispatch", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{
			ID:       dispatchID,
			SenderID: uuid.New(),
			Status:   entity.DispatchStatusPending,
			Title:    "old",
			Body:     "old body",
		}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		mocks.dispatches.EXPECT().Update(ctx, dispatch).Return(nil)
		radius := 8.0

		updated, err := svc.UpdatePending(ctx, uuid.New(), true, dispatchID, &usecase.UpdateDispatchRequest{RadiusMiles: &radius})

		require.NoError(t, err)
		require.NotNil(t, updated.RadiusMiles)
		assert.Equal(t, 8.0, *updated.RadiusMiles)
	})

	t.Run("only the owner may edit", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: uuid.New(), Status: entity.DispatchStatusPending}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		title := "hijack"

		_, err := svc.UpdatePending(ctx, senderID, false, dispatchID, &usecase.UpdateDispatchRequest{Title: &title})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("sent dispatches are immutable", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: senderID, Status: entity.DispatchStatusSent}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		title := "too late"

		_, err := svc.UpdatePending(ctx, senderID, false, dispatchID, &usecase.UpdateDispatchRequest{Title: &title})

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
	})
}

func TestDeleteDispatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()
	dispatchID := uuid.New()

	t.Run("owner deletes own dispatch", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: senderID, Status: entity.DispatchStatusSent}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		mocks.dispatches.EXPECT().Delete(ctx, dispatchID).Return(nil)

		require.NoError(t, svc.Delete(ctx, senderID, false, dispatchID))
	})

	t.Run("admin deletes any dispatch", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: uuid.New(), Status: entity.DispatchStatusPending}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		mocks.dispatches.EXPECT().Delete(ctx, dispatchID).Return(nil)

		require.NoError(t, svc.Delete(ctx, uuid.New(), true, dispatchID))
	})

	t.Run("strangers may not delete", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: uuid.New()}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)

		assert.ErrorIs(t, svc.Delete(ctx, senderID, false, dispatchID), domainerrors.ErrForbidden)
	})
}

func TestHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()

	svc, mocks := createTestDispatchService(t, unlimitedPlan())
	digests := []*entity.DispatchDigest{{Title: "Fresh sourdough", RecipientCount: 42}}
	mocks.notifications.EXPECT().ListDigestsBySender(ctx, senderID, 20, 0).Return(digests, nil)

	result, err := svc.History(ctx, senderID, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, digests, result)
}

func TestShareQR(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()
	dispatchID := uuid.New()

	t.Run("renders a deep link for the owner", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: senderID}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)
		mocks.qrGenerator.EXPECT().
			GeneratePNG("beacon://dispatches/"+dispatchID.String(), 256).
			Return([]byte("png"), nil)

		png, err := svc.ShareQR(ctx, senderID, dispatchID, 256)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("only the owner may share", func(t *testing.T) {
		svc, mocks := createTestDispatchService(t, unlimitedPlan())
		dispatch := &entity.Dispatch{ID: dispatchID, SenderID: uuid.New()}
		mocks.dispatches.EXPECT().GetByID(ctx, dispatchID).Return(dispatch, nil)

		_, err := svc.ShareQR(ctx, senderID, dispatchID, 256)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
