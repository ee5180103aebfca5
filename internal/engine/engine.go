package engine

import (
	"context"

	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

// SearchEngine executes a search query and returns the ordered,
// unpaginated match set. Implementations may back onto Elasticsearch or
// the in-memory catalog; pagination is applied by the HTTP boundary.
type SearchEngine interface {
	Search(ctx context.Context, query *domain.SearchQuery) (*domain.SearchResult, error)
}
