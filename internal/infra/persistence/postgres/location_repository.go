package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert stores a sample, replacing any prior sample for the same user and source.
func (repo *locationRepository) Upsert(ctx context.Context, sample *entity.LocationSample) error {
	sampleM := fromLocationDomain(sample)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "source"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "recorded_at",
			}),
		}).
		Create(sampleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location sample")
	}

	sample.ID = sampleM.ID

	return nil
}

// ListByUser retrieves all location samples recorded for a user.
func (repo *locationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location samples by user")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationDomain(sampleM))
	}

	return samples, nil
}

// ListApprovedWithinBound returns approved-source samples inside the bounding
// box. The box is a coarse index-friendly prefilter; callers apply the exact
// distance check.
func (repo *locationRepository) ListApprovedWithinBound(ctx context.Context, bound orb.Bound) ([]*entity.LocationSample, error) {
	sources := entity.ApprovedLocationSources()
	sourceValues := make([]string, 0, len(sources))
	for _, source := range sources {
		sourceValues = append(sourceValues, string(source))
	}

	var sampleModels []*model.LocationSampleModel
	if err := repo.db.WithContext(ctx).
		Where("source IN ?", sourceValues).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location samples within bound")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationDomain(sampleM))
	}

	return samples, nil
}

// toLocationDomain converts a GORM model to a domain entity.
func toLocationDomain(data *model.LocationSampleModel) *entity.LocationSample {
	return &entity.LocationSample{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Source:     entity.LocationSource(data.Source),
		RecordedAt: data.RecordedAt,
	}
}

// fromLocationDomain converts a domain entity to a GORM model.
func fromLocationDomain(data *entity.LocationSample) *model.LocationSampleModel {
	return &model.LocationSampleModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Source:     string(data.Source),
		RecordedAt: data.RecordedAt,
	}
}
