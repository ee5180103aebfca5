package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:9200", cfg.ElasticsearchURL)
	assert.Equal(t, "catalog_products", cfg.ElasticsearchIndex)
	assert.Equal(t, EngineElasticsearch, cfg.SearchEngine)
	assert.Equal(t, 2*time.Second, cfg.SearchTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEARCH_ENGINE", "memory")
	t.Setenv("SEARCH_TIMEOUT", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, EngineMemory, cfg.SearchEngine)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("SEARCH_TIMEOUT", "0s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search timeout")
}

func TestLoad_UnknownEngine(t *testing.T) {
	t.Setenv("SEARCH_ENGINE", "solr")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown search engine")
}
