package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anurag0510/ecom-search-engine/internal/service"
	"github.com/anurag0510/ecom-search-engine/pkg/health"
	"github.com/anurag0510/ecom-search-engine/pkg/httputil"
	"github.com/anurag0510/ecom-search-engine/pkg/middleware"
)

// NewRouter creates a chi router with all catalog search routes registered.
func NewRouter(
	searchService *service.SearchService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("catalog-search"))

	// Health and observability endpoints
	r.Get("/health", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Catalog search API
	searchHandler := NewSearchHandler(searchService, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", searchHandler.Search)
		r.Get("/products/{id}", searchHandler.GetProduct)
		r.Get("/categories", searchHandler.Categories)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
