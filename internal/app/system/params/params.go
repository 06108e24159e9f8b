// Package params parses query parameters into typed, validated values before
// any database filter is built. Ambiguous input fails with a validation
// message instead of being silently coerced.
package params

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Paging defaults and bounds for the admin user list.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery is the parsed form of the admin user-list query string.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	IsActive *bool
}

// ErrBadIsActive is returned when isActive is present but not a boolean literal.
var ErrBadIsActive = errors.New(`isActive must be "true" or "false"`)

// ParseListQuery extracts page/limit/search/role/isActive from the request.
//
// page and limit fall back to their defaults when absent or non-numeric and
// are clamped to valid ranges, matching how the storefront frontend has
// always called this endpoint. isActive is stricter: a present but
// non-boolean value is an error rather than an implicit false.
func ParseListQuery(r *http.Request) (ListQuery, error) {
	q := r.URL.Query()

	lq := ListQuery{
		Page:   parsePositiveInt(q.Get("page"), DefaultPage),
		Limit:  parsePositiveInt(q.Get("limit"), DefaultLimit),
		Search: strings.TrimSpace(q.Get("search")),
		Role:   strings.TrimSpace(q.Get("role")),
	}
	if lq.Limit > MaxLimit {
		lq.Limit = MaxLimit
	}

	switch v := strings.TrimSpace(q.Get("isActive")); v {
	case "":
	case "true":
		t := true
		lq.IsActive = &t
	case "false":
		f := false
		lq.IsActive = &f
	default:
		return ListQuery{}, ErrBadIsActive
	}

	return lq, nil
}

func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Pagination is the metadata block returned alongside paged results.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the pages count as ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// ParseWindowDays reads an integer "days" parameter, clamped to [1, max],
// falling back to def when absent or non-numeric.
func ParseWindowDays(r *http.Request, def, max int) int {
	n := parsePositiveInt(r.URL.Query().Get("days"), def)
	if n > max {
		return max
	}
	return n
}
