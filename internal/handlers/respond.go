// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// respondDomainError maps well-known domain errors onto HTTP status codes
// and falls back to a 500 for everything else.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidSale):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrOutOfStock):
		respondError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", "err", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// sessionID resolves the checkout session for a request. The header wins;
// without one the client falls into a shared default till.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return "default"
}
