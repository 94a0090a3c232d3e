package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func createTestAudienceResolver(t *testing.T) (*AudienceResolver, *mockRepo.MockAccountRepository, *mockRepo.MockLocationRepository) {
	t.Helper()

	accounts := mockRepo.NewMockAccountRepository(t)
	locations := mockRepo.NewMockLocationRepository(t)

	return NewAudienceResolver(accounts, locations), accounts, locations
}

func TestAudienceResolverResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	senderID := uuid.New()

	t.Run("explicit receivers win over group targeting", func(t *testing.T) {
		resolver, _, _ := createTestAudienceResolver(t)
		alice, bob := uuid.New(), uuid.New()
		dispatch := &entity.Dispatch{
			SenderID:    senderID,
			Mode:        entity.DispatchModeDirect,
			ReceiverIDs: []uuid.UUID{alice, bob, alice, senderID},
			Targets:     entity.TargetGroups{Individuals: true},
		}

		recipients, err := resolver.Resolve(ctx, dispatch)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{alice, bob}, recipients)
	})

	t.Run("fails when nothing is targeted", func(t *testing.T) {
		resolver, _, _ := createTestAudienceResolver(t)
		dispatch := &entity.Dispatch{SenderID: senderID, Mode: entity.DispatchModeDirect}

		_, err := resolver.Resolve(ctx, dispatch)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	})

	t.Run("group targeting excludes the sender", func(t *testing.T) {
		resolver, accounts, _ := createTestAudienceResolver(t)
		alice := uuid.New()
		dispatch := &entity.Dispatch{
			SenderID: senderID,
			Mode:     entity.DispatchModeDirect,
			Targets:  entity.TargetGroups{Businesses: true, Individuals: true},
		}
		accounts.EXPECT().
			ListIDsByKinds(ctx, []entity.AccountKind{entity.AccountKindBusiness, entity.AccountKindIndividual}).
			Return([]uuid.UUID{senderID, alice}, nil)

		recipients, err := resolver.Resolve(ctx, dispatch)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{alice}, recipients)
	})

	t.Run("radius narrows group matches to users inside the circle", func(t *testing.T) {
		resolver, accounts, locations := createTestAudienceResolver(t)
		near, far, unknown := uuid.New(), uuid.New(), uuid.New()
		centerLat, centerLon, radius := 40.7128, -74.006, 5.0
		dispatch := &entity.Dispatch{
			SenderID:    senderID,
			Mode:        entity.DispatchModeBlast,
			Targets:     entity.TargetGroups{Individuals: true},
			CenterLat:   &centerLat,
			CenterLon:   &centerLon,
			RadiusMiles: &radius,
		}
		accounts.EXPECT().
			ListIDsByKinds(ctx, []entity.AccountKind{entity.AccountKindIndividual}).
			Return([]uuid.UUID{near, far, unknown}, nil)
		// The bound prefilter can overshoot; the exact distance check must
		// still drop the corner sample.
		locations.EXPECT().
			ListApprovedWithinBound(ctx, mock.Anything).
			Return([]*entity.LocationSample{
				{UserID: near, Latitude: 40.72, Longitude: -74.0, Source: entity.LocationSourceGPS},
				{UserID: far, Latitude: 40.78, Longitude: -73.93, Source: entity.LocationSourceZip},
			}, nil)

		recipients, err := resolver.Resolve(ctx, dispatch)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{near}, recipients)
	})

	t.Run("duplicate samples for one user count once", func(t *testing.T) {
		resolver, accounts, locations := createTestAudienceResolver(t)
		alice := uuid.New()
		centerLat, centerLon, radius := 40.7128, -74.006, 5.0
		dispatch := &entity.Dispatch{
			SenderID:    senderID,
			Mode:        entity.DispatchModeBlast,
			Targets:     entity.TargetGroups{Individuals: true},
			CenterLat:   &centerLat,
			CenterLon:   &centerLon,
			RadiusMiles: &radius,
		}
		accounts.EXPECT().
			ListIDsByKinds(ctx, []entity.AccountKind{entity.AccountKindIndividual}).
			Return([]uuid.UUID{alice}, nil)
		locations.EXPECT().
			ListApprovedWithinBound(ctx, mock.Anything).
			Return([]*entity.LocationSample{
				{UserID: alice, Latitude: 40.71, Longitude: -74.0, Source: entity.LocationSourceGPS},
				{UserID: alice, Latitude: 40.72, Longitude: -74.01, Source: entity.LocationSourceZip},
			}, nil)

		recipients, err := resolver.Resolve(ctx, dispatch)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{alice}, recipients)
	})
}
