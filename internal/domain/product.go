package domain

// Product is a single record in the product catalog. Optional numeric
// fields are pointers so that absent values are distinguishable from
// zeroes; Score is only populated on results served by the external
// search engine.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  *int     `json:"reviewCount,omitempty"`
	Popularity   *int     `json:"popularity,omitempty"`
	IsBestSeller bool     `json:"isBestSeller"`
	InStock      bool     `json:"inStock"`
	Score        *float64 `json:"score,omitempty"`
}

// Category is a read-only classification of catalog products. Count is
// computed once when the catalog is seeded.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SearchQuery holds the text query and the optional filter set for a
// search request. Nil filter fields impose no constraint.
type SearchQuery struct {
	Query        string   `json:"query"`
	Category     *string  `json:"category,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	MinRating    *float64 `json:"minRating,omitempty"`
	IsBestSeller *bool    `json:"isBestSeller,omitempty"`
}

// Result sources reported in SearchResult.Source.
const (
	SourceElasticsearch = "elasticsearch"
	SourceMemory        = "memory"
)

// SearchResult is the ordered, unpaginated match set produced by a
// search engine. Total is the full match count known to the engine;
// pagination is applied at the HTTP boundary.
type SearchResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Source   string    `json:"source"`
	TookMs   int64     `json:"took_ms"`
}
