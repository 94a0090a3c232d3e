package postgres

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// GetByID retrieves an account by its unique ID.
func (repo *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// ListIDsByKinds returns the IDs of all accounts matching the given kinds.
func (repo *accountRepository) ListIDsByKinds(ctx context.Context, kinds []entity.AccountKind) ([]uuid.UUID, error) {
	if len(kinds) == 0 {
		return nil, nil
	}

	kindValues := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		kindValues = append(kindValues, string(kind))
	}

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("kind IN ?", kindValues).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list account IDs by kind")
	}

	return ids, nil
}

// UpdateCoordinates caches a resolved geographic point on the account.
func (repo *accountRepository) UpdateCoordinates(ctx context.Context, id uuid.UUID, latitude, longitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":  latitude,
			"longitude": longitude,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account coordinates")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	return nil
}

// toAccountDomain converts a GORM model to a domain entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:             data.ID,
		Kind:           entity.AccountKind(data.Kind),
		Name:           data.Name,
		PlanTier:       data.PlanTier,
		PlanSelectedAt: data.PlanSelectedAt,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Street:         data.Street,
		City:           data.City,
		State:          data.State,
		Zip:            data.Zip,
		Country:        data.Country,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
