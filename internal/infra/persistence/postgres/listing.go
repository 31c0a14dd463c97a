package postgres

import (
	"fmt"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"gorm.io/gorm"
)

// columnAllowList maps client-facing field names to real column names.
// Sort and filter input never reaches the query builder unless it resolves
// through one of these maps.
type columnAllowList map[string]string

var productColumns = columnAllowList{
	"name":        "name",
	"price":       "price",
	"stock":       "stock",
	"provider_id": "provider_id",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

var providerColumns = columnAllowList{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

const defaultSortColumn = "created_at"

func resolveColumn(allowed columnAllowList, field string) (string, error) {
	column, ok := allowed[field]
	if !ok {
		return "", domainerrors.ErrInvalidListQuery.WithDetails(
			fmt.Sprintf("unknown field %q", field))
	}

	return column, nil
}

// applyListQuery normalizes the query and applies its filters, ordering and
// pagination to the gorm statement. An unknown sort or filter field yields an
// invalid-input error before any SQL is built.
func applyListQuery(db *gorm.DB, query *repository.ListQuery, allowed columnAllowList) (*gorm.DB, error) {
	query.Normalize()

	for field, value := range query.Filters {
		column, err := resolveColumn(allowed, field)
		if err != nil {
			return nil, err
		}
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}

	sortColumn := defaultSortColumn
	if query.SortBy != "" {
		column, err := resolveColumn(allowed, query.SortBy)
		if err != nil {
			return nil, err
		}
		sortColumn = column
	}

	// sortColumn comes from the allow-list and the order is normalized, so
	// this string is safe to interpolate.
	db = db.Order(fmt.Sprintf("%s %s", sortColumn, query.SortOrder))

	return db.Offset(query.Offset()).Limit(query.PerPage), nil
}
