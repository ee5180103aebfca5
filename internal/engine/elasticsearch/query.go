package elasticsearch

import (
	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

// MaxResultWindow is the fixed number of documents requested from
// Elasticsearch per search. Pagination beyond this window is served from
// whatever the window returned; see the design notes.
const MaxResultWindow = 100

// BuildSearchQuery translates a SearchQuery into the Elasticsearch query
// DSL. Pure function: it only builds the request body.
func BuildSearchQuery(query *domain.SearchQuery) map[string]any {
	var mustClause any
	if query.Query != "" {
		mustClause = map[string]any{
			"multi_match": map[string]any{
				"query":     query.Query,
				"fields":    []string{"name^3", "description", "id"},
				"type":      "best_fields",
				"operator":  "or",
				"fuzziness": "AUTO",
			},
		}
	} else {
		mustClause = map[string]any{
			"match_all": map[string]any{},
		}
	}

	boolQuery := map[string]any{
		"must": []any{mustClause},
	}
	if filters := buildFilters(query); len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	return map[string]any{
		"query": map[string]any{
			"bool": boolQuery,
		},
		"sort":             buildSort(),
		"size":             MaxResultWindow,
		"track_total_hits": true,
	}
}

// buildFilters constructs the required filter clauses; each supplied
// filter narrows the match set, absent filters add no clause.
func buildFilters(query *domain.SearchQuery) []any {
	var filters []any

	if query.Category != nil && *query.Category != "" {
		filters = append(filters, map[string]any{
			"term": map[string]any{
				"category": *query.Category,
			},
		})
	}

	if query.MinPrice != nil || query.MaxPrice != nil {
		rangeFilter := map[string]any{}
		if query.MinPrice != nil {
			rangeFilter["gte"] = *query.MinPrice
		}
		if query.MaxPrice != nil {
			rangeFilter["lte"] = *query.MaxPrice
		}
		filters = append(filters, map[string]any{
			"range": map[string]any{
				"price": rangeFilter,
			},
		})
	}

	if query.MinRating != nil {
		filters = append(filters, map[string]any{
			"range": map[string]any{
				"rating": map[string]any{"gte": *query.MinRating},
			},
		})
	}

	if query.IsBestSeller != nil {
		filters = append(filters, map[string]any{
			"term": map[string]any{
				"is_best_seller": *query.IsBestSeller,
			},
		})
	}

	return filters
}

// buildSort returns the fixed sort specification: relevance first, then
// best-seller flag, rating and popularity, all descending.
func buildSort() []any {
	return []any{
		map[string]any{"_score": "desc"},
		map[string]any{"is_best_seller": "desc"},
		map[string]any{"rating": "desc"},
		map[string]any{"popularity": "desc"},
	}
}
