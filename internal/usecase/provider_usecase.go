package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProviderInput carries the fields for a new provider.
type CreateProviderInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

// UpdateProviderInput carries the replacement fields for an existing provider.
type UpdateProviderInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=50"`
}

// ProviderUsecase exposes CRUD operations over providers.
type ProviderUsecase interface {
	CreateProvider(ctx context.Context, input *CreateProviderInput) (*entity.Provider, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
	ListProviders(ctx context.Context, query *repository.ListQuery) (*repository.Page[*entity.Provider], error)
	UpdateProvider(ctx context.Context, id uuid.UUID, input *UpdateProviderInput) (*entity.Provider, error)
	DeleteProvider(ctx context.Context, id uuid.UUID) error
}
