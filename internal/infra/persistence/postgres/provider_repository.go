package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerRepository implements the domain.ProviderRepository interface using GORM.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindByID retrieves a single provider by its unique ID.
func (repo *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	return toProviderDomain(&providerM), nil
}

// List returns one page of providers matching the query.
func (repo *providerRepository) List(ctx context.Context, query *repository.ListQuery) (*repository.Page[*entity.Provider], error) {
	scoped, err := applyListQuery(repo.db.WithContext(ctx).Model(&model.ProviderModel{}), query, providerColumns)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := scoped.Session(&gorm.Session{}).Offset(-1).Limit(-1).Count(&total).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count providers")
	}

	var models []*model.ProviderModel
	if err := scoped.Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list providers")
	}

	items := make([]*entity.Provider, 0, len(models))
	for _, providerM := range models {
		items = append(items, toProviderDomain(providerM))
	}

	return &repository.Page[*entity.Provider]{
		Items:   items,
		Total:   total,
		PageNum: query.Page,
		PerPage: query.PerPage,
	}, nil
}

// Create persists a new provider entity to the database.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProviderNameTaken.WrapMessage("provider name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required provider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	provider.ID = providerM.ID
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// Update modifies an existing provider entity in the database.
func (repo *providerRepository) Update(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)

	result := repo.db.WithContext(ctx).Model(&model.ProviderModel{}).
		Where("id = ?", provider.ID).
		Updates(map[string]any{
			"name":  providerM.Name,
			"email": providerM.Email,
			"phone": providerM.Phone,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProviderNameTaken.WrapMessage("provider name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required provider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update provider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// Delete removes a provider by its unique ID. The products FK is RESTRICT, so
// a provider that still owns products surfaces as a conflict.
func (repo *providerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProviderModel{})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProviderInUse.WrapMessage("provider still referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete provider")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:    data.ID,
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	}
}
