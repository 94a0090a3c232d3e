package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockRepo "beacon/internal/mocks/repository"
)

func TestRecordLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("stores a valid sample", func(t *testing.T) {
		locations := mockRepo.NewMockLocationRepository(t)
		svc := NewLocationService(locations)
		locations.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

		sample, err := svc.Record(ctx, userID, 40.7128, -74.006, entity.LocationSourceGPS)

		require.NoError(t, err)
		assert.Equal(t, userID, sample.UserID)
		assert.Equal(t, entity.LocationSourceGPS, sample.Source)
		assert.False(t, sample.RecordedAt.IsZero())
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		svc := NewLocationService(mockRepo.NewMockLocationRepository(t))

		_, err := svc.Record(ctx, userID, 91, 0, entity.LocationSourceGPS)

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	})

	t.Run("rejects an unknown source", func(t *testing.T) {
		svc := NewLocationService(mockRepo.NewMockLocationRepository(t))

		_, err := svc.Record(ctx, userID, 40.7, -74.0, "cell_tower")

		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	})
}
