package repository

import "strings"

const (
	// DefaultPerPage is used when the client does not ask for a page size.
	DefaultPerPage = 20

	// MaxPerPage caps the page size a client may request.
	MaxPerPage = 100
)

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery describes pagination, sorting and equality filters for a listing.
// SortBy and the Filters keys are caller-supplied field names; the persistence
// layer validates them against a per-model allow-list before they reach any
// query builder.
type ListQuery struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder SortOrder
	Filters   map[string]string
}

// Normalize clamps pagination values into their allowed ranges and lowercases
// the sort order, defaulting to descending.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}

	switch SortOrder(strings.ToLower(string(q.SortOrder))) {
	case SortAsc:
		q.SortOrder = SortAsc
	default:
		q.SortOrder = SortDesc
	}
}

// Offset returns the row offset for the normalized query.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Page holds one page of a listing together with the total row count.
type Page[T any] struct {
	Items   []T
	Total   int64
	PageNum int
	PerPage int
}
