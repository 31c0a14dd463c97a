package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery_Defaults(t *testing.T) {
	query, err := parseListQuery(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 0, query.Page)
	assert.Equal(t, 0, query.PerPage)
	assert.Empty(t, query.SortBy)
	assert.Empty(t, query.Filters)
}

func TestParseListQuery_PaginationAndSorting(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("per_page", "50")
	values.Set("sort_by", "price")
	values.Set("order", "asc")

	query, err := parseListQuery(values)

	require.NoError(t, err)
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 50, query.PerPage)
	assert.Equal(t, "price", query.SortBy)
	assert.Equal(t, repository.SortOrder("asc"), query.SortOrder)
	assert.Empty(t, query.Filters)
}

func TestParseListQuery_FiltersExcludeReservedParams(t *testing.T) {
	values := url.Values{}
	values.Set("page", "1")
	values.Set("sort_by", "name")
	values.Set("name", "Widget")
	values.Set("provider_id", uuid.Nil.String())
	values.Set("empty", "")

	query, err := parseListQuery(values)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":        "Widget",
		"provider_id": uuid.Nil.String(),
	}, query.Filters)
}

func TestParseListQuery_RejectsBadPagination(t *testing.T) {
	for name, values := range map[string]url.Values{
		"non-numeric page":     {"page": []string{"abc"}},
		"zero page":            {"page": []string{"0"}},
		"negative page":        {"page": []string{"-1"}},
		"non-numeric per_page": {"per_page": []string{"many"}},
		"zero per_page":        {"per_page": []string{"0"}},
	} {
		_, err := parseListQuery(values)

		require.Error(t, err, name)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), name)
		assert.Equal(t, domainerrors.ErrInvalidListQuery.ErrorCode(), appErr.ErrorCode(), name)
	}
}

func TestParsePathID(t *testing.T) {
	e := echo.New()

	newContext := func(raw string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)

		return c
	}

	want := uuid.New()
	got, err := parsePathID(newContext(want.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = parsePathID(newContext("not-a-uuid"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
