// Package repository defines persistence contracts for the domain layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"beacon/internal/domain/entity"
)

// AccountRepository provides access to platform accounts.
type AccountRepository interface {
	// GetByID retrieves an account by its unique identifier.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListIDsByKinds returns the IDs of all accounts whose kind is in kinds.
	ListIDsByKinds(ctx context.Context, kinds []entity.AccountKind) ([]uuid.UUID, error)

	// UpdateCoordinates persists a resolved geographic point on the account.
	UpdateCoordinates(ctx context.Context, id uuid.UUID, latitude, longitude float64) error
}
