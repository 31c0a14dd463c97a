package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct verifies the referenced provider and inserts the product in
// one transaction, so the provider cannot disappear between the two steps.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ProviderID:  input.ProviderID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()
		productRepo := repoFactory.ProductRepo()

		if _, err := providerRepo.FindByID(ctx, input.ProviderID); err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return domainerrors.ErrUnknownProvider.WrapMessage("product references an unknown provider")
			}

			return errors.Wrap(err, "failed to verify provider")
		}

		return productRepo.Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct retrieves a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns one page of products matching the query.
func (srv *productService) ListProducts(ctx context.Context, query *repository.ListQuery) (*repository.Page[*entity.Product], error) {
	page, err := srv.productRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}

// UpdateProduct replaces the mutable fields of an existing product. The
// provider check and the update share a transaction, as in CreateProduct.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()
		productRepo := repoFactory.ProductRepo()

		if _, err := providerRepo.FindByID(ctx, input.ProviderID); err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return domainerrors.ErrUnknownProvider.WrapMessage("product references an unknown provider")
			}

			return errors.Wrap(err, "failed to verify provider")
		}

		product := &entity.Product{
			ID:          id,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			ProviderID:  input.ProviderID,
		}

		if err := productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
			}

			return err
		}

		var findErr error
		updated, findErr = productRepo.FindByID(ctx, id)

		return findErr
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", id))

	return updated, nil
}

// DeleteProduct removes a product by ID.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product delete failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id))

	return nil
}
