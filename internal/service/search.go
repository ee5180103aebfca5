package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"

	"github.com/anurag0510/ecom-search-engine/internal/catalog"
	"github.com/anurag0510/ecom-search-engine/internal/domain"
	"github.com/anurag0510/ecom-search-engine/internal/engine"
	apperrors "github.com/anurag0510/ecom-search-engine/pkg/errors"
)

var (
	searchFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "search_fallback_total",
		Help: "Total number of searches served by the in-memory fallback path",
	})

	breakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "search_breaker_state",
		Help: "Current state of the search circuit breaker (0=closed, 1=half-open, 2=open)",
	})
)

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// SearchService orchestrates search requests: a single attempt against
// the primary engine under a bounded timeout and a circuit breaker, with
// a synchronous fall back to the in-memory engine on any failure. The
// caller sees the same result shape regardless of which path served the
// request.
type SearchService struct {
	primary  engine.SearchEngine
	fallback engine.SearchEngine
	store    *catalog.Store
	breaker  *gobreaker.CircuitBreaker[*domain.SearchResult]
	timeout  time.Duration
	logger   *slog.Logger
}

// NewSearchService creates a search service. primary may be nil, in
// which case every search is served by the fallback engine directly.
func NewSearchService(
	primary engine.SearchEngine,
	fallback engine.SearchEngine,
	store *catalog.Store,
	timeout time.Duration,
	logger *slog.Logger,
) *SearchService {
	settings := gobreaker.Settings{
		Name:        "search-engine",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.Set(stateToFloat(to))
		},
	}

	return &SearchService{
		primary:  primary,
		fallback: fallback,
		store:    store,
		breaker:  gobreaker.NewCircuitBreaker[*domain.SearchResult](settings),
		timeout:  timeout,
		logger:   logger,
	}
}

// Search executes a search query. The query text must be non-empty; the
// HTTP boundary validates this too and maps the error to a 400.
func (s *SearchService) Search(ctx context.Context, query *domain.SearchQuery) (*domain.SearchResult, error) {
	query.Query = strings.TrimSpace(query.Query)
	if query.Query == "" {
		return nil, apperrors.InvalidInput("Search query is required")
	}

	if s.primary == nil {
		return s.serveFallback(ctx, query)
	}

	result, err := s.breaker.Execute(func() (*domain.SearchResult, error) {
		// One attempt, bounded by the configured timeout. No retries
		// before falling back, so worst-case latency is one timeout.
		searchCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.primary.Search(searchCtx, query)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "primary search failed, falling back to catalog",
			slog.String("query", query.Query),
			slog.Any("filters", query),
			slog.String("error", err.Error()),
		)
		return s.serveFallback(ctx, query)
	}

	s.logger.DebugContext(ctx, "search executed",
		slog.String("query", query.Query),
		slog.String("source", result.Source),
		slog.Int("total", result.Total),
		slog.Int64("took_ms", result.TookMs),
	)

	return result, nil
}

// serveFallback answers the query from the in-memory engine.
func (s *SearchService) serveFallback(ctx context.Context, query *domain.SearchQuery) (*domain.SearchResult, error) {
	searchFallbackTotal.Inc()

	result, err := s.fallback.Search(ctx, query)
	if err != nil {
		// The in-memory engine does not fail in practice; anything here
		// is an internal defect.
		return nil, apperrors.Internal(err)
	}
	return result, nil
}

// GetProduct returns a single product by its identifier.
func (s *SearchService) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := s.store.ByID(id)
	if !ok {
		return domain.Product{}, apperrors.NotFound("Product not found")
	}
	return p, nil
}

// Categories returns the catalog categories with product counts.
func (s *SearchService) Categories(_ context.Context) []domain.Category {
	return s.store.Categories()
}
