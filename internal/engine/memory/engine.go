package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/anurag0510/ecom-search-engine/internal/catalog"
	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

// Engine is the in-memory search path over the catalog store. It does a
// linear substring match on name and description, narrows by the filter
// set, and orders by best-seller flag, rating and popularity. The
// catalog is immutable, so the engine needs no locking and is
// deterministic for a fixed input.
type Engine struct {
	store *catalog.Store
}

// New creates an in-memory engine over the given catalog store.
func New(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Search executes the query against the catalog. It never fails; an
// empty result is returned when nothing matches.
func (e *Engine) Search(_ context.Context, query *domain.SearchQuery) (*domain.SearchResult, error) {
	start := time.Now()

	queryLower := strings.ToLower(strings.TrimSpace(query.Query))

	matched := make([]domain.Product, 0)
	for _, p := range e.store.Products() {
		if !matches(p, query, queryLower) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched)

	return &domain.SearchResult{
		Products: matched,
		Total:    len(matched),
		Source:   domain.SourceMemory,
		TookMs:   time.Since(start).Milliseconds(),
	}, nil
}

// matches reports whether a product satisfies the text query and every
// supplied filter. Filters compose with AND; absent filters impose no
// constraint.
func matches(p domain.Product, query *domain.SearchQuery, queryLower string) bool {
	if queryLower != "" {
		nameLower := strings.ToLower(p.Name)
		descLower := strings.ToLower(p.Description)
		if !strings.Contains(nameLower, queryLower) && !strings.Contains(descLower, queryLower) {
			return false
		}
	}

	if query.Category != nil && *query.Category != "" {
		if p.Category != *query.Category {
			return false
		}
	}

	if query.MinPrice != nil && p.Price < *query.MinPrice {
		return false
	}
	if query.MaxPrice != nil && p.Price > *query.MaxPrice {
		return false
	}

	// A minimum-rating filter excludes products without a rating.
	if query.MinRating != nil {
		if p.Rating == nil || *p.Rating < *query.MinRating {
			return false
		}
	}

	if query.IsBestSeller != nil && p.IsBestSeller != *query.IsBestSeller {
		return false
	}

	return true
}

// sortProducts orders results by best-seller flag desc, then rating
// desc, then popularity desc. The sort is stable so full ties keep
// catalog insertion order.
func sortProducts(products []domain.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]

		if a.IsBestSeller != b.IsBestSeller {
			return a.IsBestSeller
		}

		ar, br := ratingOf(a), ratingOf(b)
		if ar != br {
			return ar > br
		}

		return popularityOf(a) > popularityOf(b)
	})
}

func ratingOf(p domain.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func popularityOf(p domain.Product) int {
	if p.Popularity == nil {
		return 0
	}
	return *p.Popularity
}
