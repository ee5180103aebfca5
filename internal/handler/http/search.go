package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anurag0510/ecom-search-engine/internal/domain"
	"github.com/anurag0510/ecom-search-engine/internal/service"
	"github.com/anurag0510/ecom-search-engine/pkg/httputil"
	"github.com/anurag0510/ecom-search-engine/pkg/pagination"
	"github.com/anurag0510/ecom-search-engine/pkg/validator"
)

// SearchHandler handles HTTP requests for the catalog search endpoints.
type SearchHandler struct {
	service *service.SearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a new search HTTP handler.
func NewSearchHandler(svc *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: svc,
		logger:  logger,
	}
}

// searchParams is the parsed and validated query string of GET /api/search.
type searchParams struct {
	Query        string   `validate:"required"`
	Category     *string  `validate:"omitempty,min=1"`
	MinPrice     *float64 `validate:"omitempty,gte=0"`
	MaxPrice     *float64 `validate:"omitempty,gte=0"`
	MinRating    *float64 `validate:"omitempty,gte=0,lte=5"`
	IsBestSeller *bool
}

// searchFilters echoes the supplied filter set back in the response.
type searchFilters struct {
	Category     *string  `json:"category,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	MinRating    *float64 `json:"minRating,omitempty"`
	IsBestSeller *bool    `json:"isBestSeller,omitempty"`
}

// searchResponse is the body of a successful GET /api/search.
type searchResponse struct {
	Query      string           `json:"query"`
	Filters    searchFilters    `json:"filters"`
	Pagination pagination.Meta  `json:"pagination"`
	Results    []domain.Product `json:"results"`
}

// parseSearchParams extracts and validates search parameters from the
// request. On failure it writes the 400 response and returns false.
func parseSearchParams(w http.ResponseWriter, r *http.Request) (searchParams, bool) {
	q := r.URL.Query()

	params := searchParams{
		Query: strings.TrimSpace(q.Get("query")),
	}

	if params.Query == "" {
		httputil.WriteErrorMessage(w, http.StatusBadRequest, "Search query is required")
		return params, false
	}

	if v := q.Get("category"); v != "" {
		params.Category = &v
	}

	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &params.MinPrice},
		{"maxPrice", &params.MaxPrice},
		{"minRating", &params.MinRating},
	} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httputil.WriteErrorMessage(w, http.StatusBadRequest, f.name+" must be a valid number")
			return params, false
		}
		*f.dst = &parsed
	}

	if v := q.Get("isBestSeller"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteErrorMessage(w, http.StatusBadRequest, "isBestSeller must be true or false")
			return params, false
		}
		params.IsBestSeller = &parsed
	}

	if err := validator.Validate(params); err != nil {
		httputil.WriteErrorMessage(w, http.StatusBadRequest, err.Error())
		return params, false
	}

	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		httputil.WriteErrorMessage(w, http.StatusBadRequest, "minPrice must not exceed maxPrice")
		return params, false
	}

	return params, true
}

// Search handles GET /api/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	params, ok := parseSearchParams(w, r)
	if !ok {
		return
	}

	page := pagination.FromRequest(r)

	query := &domain.SearchQuery{
		Query:        params.Query,
		Category:     params.Category,
		MinPrice:     params.MinPrice,
		MaxPrice:     params.MaxPrice,
		MinRating:    params.MinRating,
		IsBestSeller: params.IsBestSeller,
	}

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, searchResponse{
		Query: params.Query,
		Filters: searchFilters{
			Category:     params.Category,
			MinPrice:     params.MinPrice,
			MaxPrice:     params.MaxPrice,
			MinRating:    params.MinRating,
			IsBestSeller: params.IsBestSeller,
		},
		Pagination: pagination.NewMeta(result.Total, page),
		Results:    pagination.Slice(result.Products, page),
	})
}

// GetProduct handles GET /api/products/{id}.
func (h *SearchHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, product)
}

// categoriesResponse is the body of GET /api/categories.
type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// Categories handles GET /api/categories.
func (h *SearchHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, categoriesResponse{
		Categories: h.service.Categories(r.Context()),
	})
}
