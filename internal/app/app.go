package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anurag0510/ecom-search-engine/internal/catalog"
	"github.com/anurag0510/ecom-search-engine/internal/config"
	"github.com/anurag0510/ecom-search-engine/internal/engine"
	esengine "github.com/anurag0510/ecom-search-engine/internal/engine/elasticsearch"
	"github.com/anurag0510/ecom-search-engine/internal/engine/memory"
	handler "github.com/anurag0510/ecom-search-engine/internal/handler/http"
	"github.com/anurag0510/ecom-search-engine/internal/service"
	"github.com/anurag0510/ecom-search-engine/pkg/health"
)

// App wires together all dependencies and runs the catalog search service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates an application instance, initializing all dependencies.
// The catalog is seeded exactly once here; if the Elasticsearch engine
// cannot be initialized or seeded, the service starts anyway and every
// search request is served by the in-memory path.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := catalog.NewSeeded()
	logger.Info("catalog seeded",
		slog.Int("products", store.Len()),
		slog.Int("categories", len(store.Categories())),
	)

	fallback := memory.New(store)

	var primary engine.SearchEngine
	var esEng *esengine.Engine
	if cfg.SearchEngine == config.EngineElasticsearch {
		var err error
		esEng, err = esengine.New(cfg.ElasticsearchURL, cfg.ElasticsearchIndex, logger)
		if err != nil {
			logger.Warn("elasticsearch unavailable, serving from catalog only",
				slog.String("url", cfg.ElasticsearchURL),
				slog.String("error", err.Error()),
			)
			esEng = nil
		} else if err := seedIndex(esEng, store); err != nil {
			logger.Warn("elasticsearch seeding failed, serving from catalog only",
				slog.String("index", cfg.ElasticsearchIndex),
				slog.String("error", err.Error()),
			)
			esEng = nil
		} else {
			primary = esEng
			logger.Info("elasticsearch search engine initialized",
				slog.String("url", cfg.ElasticsearchURL),
				slog.String("index", cfg.ElasticsearchIndex),
			)
		}
	} else {
		logger.Info("in-memory search engine selected")
	}

	searchService := service.NewSearchService(primary, fallback, store, cfg.SearchTimeout, logger)

	healthHandler := health.NewHandler("catalog-search")
	if esEng != nil {
		healthHandler.Register("elasticsearch", esEng.Ping)
	}

	router := handler.NewRouter(searchService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// seedIndex bulk-indexes the catalog seed into Elasticsearch.
func seedIndex(eng *esengine.Engine, store *catalog.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return eng.BulkIndex(ctx, store.Products())
}

// Run starts the HTTP server, blocking until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		return err
	}

	a.logger.Info("application shutdown complete")
	return nil
}
