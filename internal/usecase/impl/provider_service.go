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

// providerService implements the ProviderUsecase interface.
type providerService struct {
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

// ProviderServiceParams holds dependencies for providerService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	Logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: params.ProviderRepo,
		logger:       params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProvider inserts a new provider.
func (srv *providerService) CreateProvider(ctx context.Context, input *usecase.CreateProviderInput) (*entity.Provider, error) {
	provider := &entity.Provider{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := srv.providerRepo.Create(ctx, provider); err != nil {
		srv.log(ctx).Warn("Failed to create provider", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create provider")
	}

	srv.log(ctx).Debug("Provider created", slog.Any("providerID", provider.ID))

	return provider, nil
}

// GetProvider retrieves a single provider by ID.
func (srv *providerService) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := srv.providerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProviderNotFound, "provider lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}

	return provider, nil
}

// ListProviders returns one page of providers matching the query.
func (srv *providerService) ListProviders(ctx context.Context, query *repository.ListQuery) (*repository.Page[*entity.Provider], error) {
	page, err := srv.providerRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return page, nil
}

// UpdateProvider replaces the mutable fields of an existing provider.
func (srv *providerService) UpdateProvider(ctx context.Context, id uuid.UUID, input *usecase.UpdateProviderInput) (*entity.Provider, error) {
	provider := &entity.Provider{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	if err := srv.providerRepo.Update(ctx, provider); err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProviderNotFound, "provider update failed")
		}

		srv.log(ctx).Warn("Failed to update provider", slog.Any("providerID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update provider")
	}

	updated, err := srv.providerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload provider after update")
	}

	srv.log(ctx).Debug("Provider updated", slog.Any("providerID", id))

	return updated, nil
}

// DeleteProvider removes a provider by ID. A provider that still owns
// products is reported as a conflict, not deleted.
func (srv *providerService) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	if err := srv.providerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return errors.Wrap(domainerrors.ErrProviderNotFound, "provider delete failed")
		}

		srv.log(ctx).Warn("Failed to delete provider", slog.Any("providerID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete provider")
	}

	srv.log(ctx).Debug("Provider deleted", slog.Any("providerID", id))

	return nil
}
