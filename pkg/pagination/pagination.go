package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the client supplies none.
	DefaultLimit = 10
	// MaxLimit bounds the page size a client may request.
	MaxLimit = 100
)

// Params holds pagination parameters extracted from query strings.
// Page is 1-indexed.
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultParams returns the pagination defaults.
func DefaultParams() Params {
	return Params{Page: 1, Limit: DefaultLimit}
}

// FromRequest extracts page and limit from an HTTP request. Invalid or
// out-of-bounds values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 && v <= MaxLimit {
			p.Limit = v
		}
	}

	return p
}

// Slice applies the offset/window slice to an already ordered sequence.
// Out-of-range pages yield an empty slice, not an error.
func Slice[T any](items []T, p Params) []T {
	start := (p.Page - 1) * p.Limit
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Meta is the pagination block reported alongside paginated results.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewMeta computes the pagination metadata for the given total match
// count, with Pages = ceil(total/limit).
func NewMeta(total int, p Params) Meta {
	pages := total / p.Limit
	if total%p.Limit > 0 {
		pages++
	}
	return Meta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
