package catalog

import (
	"github.com/anurag0510/ecom-search-engine/internal/domain"
	"github.com/anurag0510/ecom-search-engine/pkg/slug"
)

// Store is the in-process product catalog. It is seeded exactly once at
// construction and never mutated afterwards, so concurrent readers need
// no locking.
type Store struct {
	products   []domain.Product
	byID       map[string]domain.Product
	categories []domain.Category
}

// New builds a Store from the given products. Category counts are
// computed from the seed so they always reflect actual catalog contents.
func New(products []domain.Product) *Store {
	byID := make(map[string]domain.Product, len(products))
	counts := make(map[string]int)
	var order []string

	for _, p := range products {
		byID[p.ID] = p
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}

	categories := make([]domain.Category, 0, len(order))
	for _, name := range order {
		categories = append(categories, domain.Category{
			ID:    slug.Generate(name),
			Name:  name,
			Count: counts[name],
		})
	}

	return &Store{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// NewSeeded builds a Store populated with the default seed catalog.
func NewSeeded() *Store {
	return New(seedProducts())
}

// Products returns all catalog products in insertion order. The returned
// slice is a copy; callers may reorder it freely.
func (s *Store) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks up a product by its identifier.
func (s *Store) ByID(id string) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Categories returns the catalog categories with their product counts.
func (s *Store) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
