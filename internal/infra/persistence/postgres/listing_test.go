package postgres

import (
	"testing"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn(t *testing.T) {
	column, err := resolveColumn(productColumns, "provider_id")
	assert.NoError(t, err)
	assert.Equal(t, "provider_id", column)

	_, err = resolveColumn(productColumns, "password_hash")
	assert.Error(t, err)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "password_hash")
}

func TestResolveColumn_RejectsInjection(t *testing.T) {
	_, err := resolveColumn(providerColumns, "name; DROP TABLE providers--")
	assert.Error(t, err)
}

func TestListQueryNormalize(t *testing.T) {
	query := &repository.ListQuery{Page: 0, PerPage: 500, SortOrder: "ASC"}
	query.Normalize()

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, repository.MaxPerPage, query.PerPage)
	assert.Equal(t, repository.SortAsc, query.SortOrder)
	assert.Equal(t, 0, query.Offset())

	query = &repository.ListQuery{Page: 3, SortOrder: "sideways"}
	query.Normalize()

	assert.Equal(t, repository.DefaultPerPage, query.PerPage)
	assert.Equal(t, repository.SortDesc, query.SortOrder)
	assert.Equal(t, 2*repository.DefaultPerPage, query.Offset())
}
