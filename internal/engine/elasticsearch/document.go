package elasticsearch

import (
	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

// document is the wire representation of a product in the Elasticsearch
// index. Field names are snake_case to match the index mapping and the
// query DSL built in query.go.
type document struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  *int     `json:"review_count,omitempty"`
	Popularity   *int     `json:"popularity,omitempty"`
	IsBestSeller bool     `json:"is_best_seller"`
	InStock      bool     `json:"in_stock"`
}

func toDocument(p domain.Product) document {
	return document{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		Popularity:   p.Popularity,
		IsBestSeller: p.IsBestSeller,
		InStock:      p.InStock,
	}
}

// toProduct maps a document back to a Product, attaching the engine's
// relevance score when present.
func toProduct(d document, score *float64) domain.Product {
	return domain.Product{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category,
		Price:        d.Price,
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		Popularity:   d.Popularity,
		IsBestSeller: d.IsBestSeller,
		InStock:      d.InStock,
		Score:        score,
	}
}
