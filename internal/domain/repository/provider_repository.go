package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderNotFound is returned when no provider matches the given ID.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines the standard operations for provider persistence.
type ProviderRepository interface {
	// FindByID retrieves a single provider by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)

	// List returns one page of providers matching the query.
	List(ctx context.Context, query *ListQuery) (*Page[*entity.Provider], error)

	// Create persists a new provider entity to the storage.
	Create(ctx context.Context, provider *entity.Provider) error

	// Update modifies an existing provider entity in the storage.
	Update(ctx context.Context, provider *entity.Provider) error

	// Delete removes a provider by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
