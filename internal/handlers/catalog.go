// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// CatalogHandler exposes catalog maintenance: list, search and the
// product-plus-stock CRUD.
type CatalogHandler struct {
	catalog ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog ports.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// List handles GET /api/v1/catalog. An optional ?q= narrows by product name.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		entries interface{}
		err     error
	)
	if query != "" {
		entries, err = h.catalog.Search(r.Context(), query)
	} else {
		entries, err = h.catalog.ListEntries(r.Context())
	}
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// Create handles POST /api/v1/catalog
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.EntryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.catalog.AddEntry(r.Context(), params)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// Update handles PUT /api/v1/catalog/{product_id}
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("product_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var params ports.EntryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.catalog.EditEntry(r.Context(), productID, params); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/catalog/{product_id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("product_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.catalog.DeleteEntry(r.Context(), productID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// RegisterRoutes registers catalog routes on the mux
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog", h.List)
	mux.HandleFunc("POST /api/v1/catalog", h.Create)
	mux.HandleFunc("PUT /api/v1/catalog/{product_id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/catalog/{product_id}", h.Delete)
}
