package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/anurag0510/ecom-search-engine/pkg/errors"
	"github.com/anurag0510/ecom-search-engine/pkg/logger"
)

// ErrorBody is the JSON body returned to clients on any error.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrorMessage writes an {"error": message} body with the given status.
func WriteErrorMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message})
}

// WriteError maps an error to an HTTP status and writes an
// {"error": message} body. Internal errors are logged with request
// context and reduced to a generic message for the client; it prefers
// the request-scoped logger from context over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	status := apperrors.HTTPStatus(err)
	message := "An internal error occurred"

	// Client errors carry their message; internal detail never leaves the server.
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError:
		message = appErr.Message
	case status < http.StatusInternalServerError:
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteErrorMessage(w, status, message)
}
