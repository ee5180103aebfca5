package elasticsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag0510/ecom-search-engine/internal/domain"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }
func bptr(v bool) *bool       { return &v }

func boolQueryOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	query, ok := body["query"].(map[string]any)
	require.True(t, ok)
	boolQuery, ok := query["bool"].(map[string]any)
	require.True(t, ok)
	return boolQuery
}

func TestBuildSearchQuery_TextClause(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{Query: "headphones"})

	boolQuery := boolQueryOf(t, body)
	must, ok := boolQuery["must"].([]any)
	require.True(t, ok)
	require.Len(t, must, 1)

	multiMatch, ok := must[0].(map[string]any)["multi_match"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "headphones", multiMatch["query"])
	assert.Equal(t, "AUTO", multiMatch["fuzziness"])
	assert.Equal(t, "or", multiMatch["operator"])
	assert.Contains(t, multiMatch["fields"], "name^3")
}

func TestBuildSearchQuery_EmptyQueryMatchesAll(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{})

	boolQuery := boolQueryOf(t, body)
	must := boolQuery["must"].([]any)
	require.Len(t, must, 1)
	assert.Contains(t, must[0].(map[string]any), "match_all")
}

func TestBuildSearchQuery_NoFiltersOmitsFilterClause(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{Query: "headphones"})

	boolQuery := boolQueryOf(t, body)
	assert.NotContains(t, boolQuery, "filter")
}

func TestBuildSearchQuery_FilterClauses(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{
		Query:        "watch",
		Category:     sptr("Wearables"),
		MinPrice:     fptr(50),
		MaxPrice:     fptr(150),
		MinRating:    fptr(4),
		IsBestSeller: bptr(true),
	})

	boolQuery := boolQueryOf(t, body)
	filters, ok := boolQuery["filter"].([]any)
	require.True(t, ok)
	require.Len(t, filters, 4)

	term := filters[0].(map[string]any)["term"].(map[string]any)
	assert.Equal(t, "Wearables", term["category"])

	priceRange := filters[1].(map[string]any)["range"].(map[string]any)["price"].(map[string]any)
	assert.Equal(t, 50.0, priceRange["gte"])
	assert.Equal(t, 150.0, priceRange["lte"])

	ratingRange := filters[2].(map[string]any)["range"].(map[string]any)["rating"].(map[string]any)
	assert.Equal(t, 4.0, ratingRange["gte"])
	assert.NotContains(t, ratingRange, "lte")

	bestSeller := filters[3].(map[string]any)["term"].(map[string]any)
	assert.Equal(t, true, bestSeller["is_best_seller"])
}

func TestBuildSearchQuery_OpenEndedPriceRange(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{
		Query:    "watch",
		MinPrice: fptr(50),
	})

	boolQuery := boolQueryOf(t, body)
	filters := boolQuery["filter"].([]any)
	require.Len(t, filters, 1)

	priceRange := filters[0].(map[string]any)["range"].(map[string]any)["price"].(map[string]any)
	assert.Equal(t, 50.0, priceRange["gte"])
	assert.NotContains(t, priceRange, "lte")
}

func TestBuildSearchQuery_FixedSortAndWindow(t *testing.T) {
	body := BuildSearchQuery(&domain.SearchQuery{Query: "anything"})

	assert.Equal(t, MaxResultWindow, body["size"])
	assert.Equal(t, true, body["track_total_hits"])

	sortClause, ok := body["sort"].([]any)
	require.True(t, ok)
	require.Len(t, sortClause, 4)
	assert.Equal(t, map[string]any{"_score": "desc"}, sortClause[0])
	assert.Equal(t, map[string]any{"is_best_seller": "desc"}, sortClause[1])
	assert.Equal(t, map[string]any{"rating": "desc"}, sortClause[2])
	assert.Equal(t, map[string]any{"popularity": "desc"}, sortClause[3])
}

func TestToProduct_AttachesScore(t *testing.T) {
	score := 1.42
	p := toProduct(document{ID: "1", Name: "Thing", Price: 9.99}, &score)
	require.NotNil(t, p.Score)
	assert.Equal(t, 1.42, *p.Score)

	p = toProduct(document{ID: "1", Name: "Thing", Price: 9.99}, nil)
	assert.Nil(t, p.Score)
}

func TestDocumentRoundTrip(t *testing.T) {
	src := domain.Product{
		ID:           "7",
		Name:         "Fitness Tracker Band",
		Description:  "Slim activity band",
		Category:     "Wearables",
		Price:        59.95,
		Rating:       fptr(4.1),
		IsBestSeller: false,
		InStock:      true,
	}

	got := toProduct(toDocument(src), nil)
	assert.Equal(t, src, got)
}
