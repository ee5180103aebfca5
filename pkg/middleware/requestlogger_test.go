package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anurag0510/ecom-search-engine/pkg/logger"
)

func TestRequestLogging_GeneratesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter("test", "info", &buf)

	h := RequestLogging(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search?query=x", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.NotEmpty(t, entry["correlation_id"])
}

func TestRequestLogging_PropagatesCorrelationID(t *testing.T) {
	l := logger.NewWithWriter("test", "info", io.Discard)

	var got string
	h := RequestLogging(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logger.CorrelationIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	req.Header.Set("X-Correlation-ID", "client-supplied-id")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", got)
	assert.Equal(t, "client-supplied-id", w.Header().Get("X-Correlation-ID"))
}

func TestRequestLogger_StoresEnrichedLogger(t *testing.T) {
	base := logger.NewWithWriter("test", "info", io.Discard)

	var inner *slog.Logger
	h := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = logger.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, inner)
	assert.NotSame(t, slog.Default(), inner)
}
