// Package shared holds list filter plumbing common to the catalog packages.
package shared

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListFilters represents standard list query parameters.
type ListFilters struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	SortDir string
	Active  *bool

	// Scope filters for brand/model scoped entities.
	Marke string
	Model string
}

// ParseListFilters reads the standard query parameters off a request.
func ParseListFilters(r *http.Request) ListFilters {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = DefaultPage
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 1000 {
		limit = DefaultLimit
	}

	filters := ListFilters{
		Page:    page,
		Limit:   limit,
		Search:  q.Get("search"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
		Marke:   q.Get("marke"),
		Model:   q.Get("model"),
	}
	if raw := q.Get("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.Active = &active
		}
	}
	return filters
}

// Offset converts page/limit into a SQL offset.
func (f ListFilters) Offset() int {
	offset := (f.Page - 1) * f.Limit
	if offset < 0 {
		return 0
	}
	return offset
}
