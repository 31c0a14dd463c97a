package handler

import (
	"net/url"
	"strconv"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parsePathID reads the :id path parameter as a UUID.
func parsePathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	return id, nil
}

// Reserved query parameters for pagination and sorting. Everything else is
// treated as an equality filter on the named field.
const (
	queryParamPage    = "page"
	queryParamPerPage = "per_page"
	queryParamSortBy  = "sort_by"
	queryParamOrder   = "order"
)

// parseListQuery builds a ListQuery from the request's query string. Field
// names are passed through untouched; the persistence layer rejects anything
// outside its allow-list.
func parseListQuery(values url.Values) (*repository.ListQuery, error) {
	query := &repository.ListQuery{
		SortBy:    values.Get(queryParamSortBy),
		SortOrder: repository.SortOrder(values.Get(queryParamOrder)),
		Filters:   make(map[string]string),
	}

	if raw := values.Get(queryParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, domainerrors.ErrInvalidListQuery.WithDetails("page must be a positive integer")
		}
		query.Page = page
	}

	if raw := values.Get(queryParamPerPage); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return nil, domainerrors.ErrInvalidListQuery.WithDetails("per_page must be a positive integer")
		}
		query.PerPage = perPage
	}

	for key, vals := range values {
		switch key {
		case queryParamPage, queryParamPerPage, queryParamSortBy, queryParamOrder:
			continue
		}
		if len(vals) > 0 && vals[0] != "" {
			query.Filters[key] = vals[0]
		}
	}

	return query, nil
}

// pageResponse is the JSON shape of a paginated listing.
type pageResponse[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}
