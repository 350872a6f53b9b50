// internal/handlers/clients.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// ClientHandler exposes the client book CRUD.
type ClientHandler struct {
	clients ports.ClientService
	logger  *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(clients ports.ClientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clients: clients,
		logger:  logger.With(slog.String("handler", "clients")),
	}
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListClients(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"clients": clients,
		"count":   len(clients),
	})
}

// Get handles GET /api/v1/clients/{client_id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.PathValue("client_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	client, err := h.clients.GetClient(r.Context(), clientID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if client == nil {
		respondError(w, http.StatusNotFound, "client not found")
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params ports.ClientParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client, err := h.clients.AddClient(r.Context(), params)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, client)
}

// Update handles PUT /api/v1/clients/{client_id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.PathValue("client_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var params ports.ClientParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.clients.EditClient(r.Context(), clientID, params); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Delete handles DELETE /api/v1/clients/{client_id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(r.PathValue("client_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := h.clients.DeleteClient(r.Context(), clientID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// RegisterRoutes registers client routes on the mux
func (h *ClientHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/clients", h.List)
	mux.HandleFunc("GET /api/v1/clients/{client_id}", h.Get)
	mux.HandleFunc("POST /api/v1/clients", h.Create)
	mux.HandleFunc("PUT /api/v1/clients/{client_id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/clients/{client_id}", h.Delete)
}
