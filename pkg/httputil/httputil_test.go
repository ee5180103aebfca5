package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/anurag0510/ecom-search-engine/pkg/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "world", body["hello"])
}

func TestWriteErrorMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorMessage(w, http.StatusBadRequest, "Search query is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Search query is required", body.Error)
}

func TestWriteError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)

	WriteError(w, r, apperrors.NotFound("Product not found"), testLogger())

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Product not found", body.Error)
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	WriteError(w, r, errors.New("dial tcp 10.0.0.3:9200: i/o timeout"), testLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "An internal error occurred", body.Error)
	assert.NotContains(t, body.Error, "i/o timeout")
}

func TestWriteError_SentinelMapping(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/search", nil)

	WriteError(w, r, apperrors.InvalidInput("minPrice must be a valid number"), testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "minPrice must be a valid number", body.Error)
}
