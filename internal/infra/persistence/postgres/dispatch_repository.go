package postgres

import (
	"context"
	"encoding/json"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dispatchRepository implements the repository.DispatchRepository interface.
type dispatchRepository struct {
	db *gorm.DB
}

// NewDispatchRepository is the constructor for dispatchRepository.
func NewDispatchRepository(db *gorm.DB) repository.DispatchRepository {
	return &dispatchRepository{
		db: db,
	}
}

// Create persists a new dispatch.
func (repo *dispatchRepository) Create(ctx context.Context, dispatch *entity.Dispatch) error {
	dispatchM, err := fromDispatchDomain(dispatch)
	if err != nil {
		return errors.Wrap(err, "failed to serialize dispatch")
	}

	if err := repo.db.WithContext(ctx).Create(dispatchM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("invalid sender reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("missing required dispatch information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create dispatch")
	}

	// Update the entity with generated values
	dispatch.ID = dispatchM.ID
	dispatch.CreatedAt = dispatchM.CreatedAt

	return nil
}

// GetByID retrieves a dispatch by its unique ID.
func (repo *dispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dispatch, error) {
	var dispatchM model.DispatchModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dispatchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDispatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find dispatch by ID")
	}

	return toDispatchDomain(&dispatchM)
}

// Update persists mutable dispatch fields.
func (repo *dispatchRepository) Update(ctx context.Context, dispatch *entity.Dispatch) error {
	dispatchM, err := fromDispatchDomain(dispatch)
	if err != nil {
		return errors.Wrap(err, "failed to serialize dispatch")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DispatchModel{}).
		Where("id = ?", dispatch.ID).
		Updates(map[string]interface{}{
			"title":        dispatchM.Title,
			"body":         dispatchM.Body,
			"url":          dispatchM.URL,
			"targets":      dispatchM.Targets,
			"receiver_ids": dispatchM.ReceiverIDs,
			"center_lat":   dispatchM.CenterLat,
			"center_lon":   dispatchM.CenterLon,
			"radius_miles": dispatchM.RadiusMiles,
			"channel":      dispatchM.Channel,
			"status":       dispatchM.Status,
			"metadata":     dispatchM.Metadata,
			"approved_at":  dispatchM.ApprovedAt,
			"sent_at":      dispatchM.SentAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dispatch")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDispatchNotFound
	}

	return nil
}

// Delete hard-removes a dispatch. Deleting an already-removed dispatch
// reports not found.
func (repo *dispatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DispatchModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dispatch")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrDispatchNotFound
	}

	return nil
}

// ListPending returns pending dispatches oldest-first for the review queue.
func (repo *dispatchRepository) ListPending(ctx context.Context, limit, offset int) ([]*entity.Dispatch, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.DispatchStatusPending)).
		Order("created_at ASC")

	return repo.list(query, limit, offset)
}

// ListBySender returns a sender's dispatches newest-first.
func (repo *dispatchRepository) ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Dispatch, error) {
	query := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC")

	return repo.list(query, limit, offset)
}

func (repo *dispatchRepository) list(query *gorm.DB, limit, offset int) ([]*entity.Dispatch, error) {
	var dispatchModels []*model.DispatchModel

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&dispatchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dispatches")
	}

	dispatches := make([]*entity.Dispatch, 0, len(dispatchModels))
	for _, dispatchM := range dispatchModels {
		dispatch, err := toDispatchDomain(dispatchM)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, dispatch)
	}

	return dispatches, nil
}

// CountBySenderSince counts a sender's dispatches of the given mode and
// statuses created at or after since.
func (repo *dispatchRepository) CountBySenderSince(ctx context.Context, senderID uuid.UUID, mode entity.DispatchMode, statuses []entity.DispatchStatus, since time.Time) (int64, error) {
	statusValues := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusValues = append(statusValues, string(status))
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DispatchModel{}).
		Where("sender_id = ? AND mode = ? AND status IN ? AND created_at >= ?",
			senderID, string(mode), statusValues, since).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count dispatches by sender")
	}

	return count, nil
}

// LastCreatedAt returns the creation time of the sender's most recent dispatch
// of the given mode, or nil when none exists.
func (repo *dispatchRepository) LastCreatedAt(ctx context.Context, senderID uuid.UUID, mode entity.DispatchMode) (*time.Time, error) {
	var dispatchM model.DispatchModel

	if err := repo.db.WithContext(ctx).
		Select("created_at").
		Where("sender_id = ? AND mode = ?", senderID, string(mode)).
		Order("created_at DESC").
		First(&dispatchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last dispatch time")
	}

	return &dispatchM.CreatedAt, nil
}

// toDispatchDomain converts a GORM model to a domain entity.
func toDispatchDomain(data *model.DispatchModel) (*entity.Dispatch, error) {
	var targets entity.TargetGroups
	if len(data.Targets) > 0 {
		if err := json.Unmarshal(data.Targets, &targets); err != nil {
			return nil, errors.Wrap(err, "failed to decode dispatch targets")
		}
	}

	var receiverIDs []uuid.UUID
	if len(data.ReceiverIDs) > 0 {
		if err := json.Unmarshal(data.ReceiverIDs, &receiverIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode dispatch receiver IDs")
		}
	}

	var metadata map[string]string
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode dispatch metadata")
		}
	}

	return &entity.Dispatch{
		ID:          data.ID,
		SenderID:    data.SenderID,
		Mode:        entity.DispatchMode(data.Mode),
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		Targets:     targets,
		ReceiverIDs: receiverIDs,
		CenterLat:   data.CenterLat,
		CenterLon:   data.CenterLon,
		RadiusMiles: data.RadiusMiles,
		Channel:     entity.DeliveryChannel(data.Channel),
		Status:      entity.DispatchStatus(data.Status),
		Metadata:    metadata,
		CreatedAt:   data.CreatedAt,
		ApprovedAt:  data.ApprovedAt,
		SentAt:      data.SentAt,
	}, nil
}

// fromDispatchDomain converts a domain entity to a GORM model.
func fromDispatchDomain(data *entity.Dispatch) (*model.DispatchModel, error) {
	targets, err := json.Marshal(data.Targets)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode dispatch targets")
	}

	var receiverIDs []byte
	if len(data.ReceiverIDs) > 0 {
		receiverIDs, err = json.Marshal(data.ReceiverIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode dispatch receiver IDs")
		}
	}

	var metadata []byte
	if len(data.Metadata) > 0 {
		metadata, err = json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode dispatch metadata")
		}
	}

	return &model.DispatchModel{
		ID:          data.ID,
		SenderID:    data.SenderID,
		Mode:        string(data.Mode),
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		Targets:     targets,
		ReceiverIDs: receiverIDs,
		CenterLat:   data.CenterLat,
		CenterLon:   data.CenterLon,
		RadiusMiles: data.RadiusMiles,
		Channel:     string(data.Channel),
		Status:      string(data.Status),
		Metadata:    metadata,
		CreatedAt:   data.CreatedAt,
		ApprovedAt:  data.ApprovedAt,
		SentAt:      data.SentAt,
	}, nil
}
