package helpers

import (
	"net/http"
	"strconv"

	"eventease/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// positiveQueryInt reads an integer query parameter, falling back when the
// value is missing, malformed, or not positive.
func positiveQueryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// ParsePagination reads page and page_size from the request query string.
// Bad values fall back to the defaults; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	return domain.PaginationParams{
		Page:     positiveQueryInt(r, "page", DefaultPage),
		PageSize: min(positiveQueryInt(r, "page_size", DefaultPageSize), MaxPageSize),
	}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta for a list of total items viewed
// through the given page and page size. TotalPages is the ceiling of
// total/pageSize, or 0 when pageSize is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
