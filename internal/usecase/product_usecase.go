package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ProviderID  uuid.UUID `json:"provider_id" validate:"required"`
}

// UpdateProductInput carries the replacement fields for an existing product.
type UpdateProductInput struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	ProviderID  uuid.UUID `json:"provider_id" validate:"required"`
}

// ProductUsecase exposes CRUD operations over products.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, query *repository.ListQuery) (*repository.Page[*entity.Product], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
