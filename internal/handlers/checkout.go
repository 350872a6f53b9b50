// internal/handlers/checkout.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// CheckoutHandler exposes the cart, reconciliation and finalize operations.
// All routes resolve their cart through the X-Session-ID header.
type CheckoutHandler struct {
	checkout ports.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout ports.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger.With(slog.String("handler", "checkout")),
	}
}

type addToCartRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

type setClientRequest struct {
	ClientID *uuid.UUID `json:"client_id"`
}

type cartResponse struct {
	Lines interface{} `json:"lines"`
	Total string      `json:"total"`
}

// GetCart handles GET /api/v1/checkout/cart
func (h *CheckoutHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	respondJSON(w, http.StatusOK, cartResponse{
		Lines: h.checkout.CurrentLines(session),
		Total: h.checkout.CurrentTotal(session).String(),
	})
}

// AddItem handles POST /api/v1/checkout/cart/items
func (h *CheckoutHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	session := sessionID(r)
	line, err := h.checkout.AddToCart(r.Context(), session, req.ProductID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"line":  line,
		"total": h.checkout.CurrentTotal(session).String(),
	})
}

// RemoveItem handles DELETE /api/v1/checkout/cart/items/{product_id}.
// With ?unit=true only one unit is removed instead of the whole line.
func (h *CheckoutHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(r.PathValue("product_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	session := sessionID(r)
	if r.URL.Query().Get("unit") == "true" {
		h.checkout.RemoveOneUnit(session, productID)
	} else {
		h.checkout.RemoveLine(session, productID)
	}

	respondJSON(w, http.StatusOK, cartResponse{
		Lines: h.checkout.CurrentLines(session),
		Total: h.checkout.CurrentTotal(session).String(),
	})
}

// SetClient handles PUT /api/v1/checkout/client. A null client_id clears
// the attribution.
func (h *CheckoutHandler) SetClient(w http.ResponseWriter, r *http.Request) {
	var req setClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.checkout.SetClient(r.Context(), sessionID(r), req.ClientID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Cancel handles DELETE /api/v1/checkout/cart
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.checkout.Cancel(sessionID(r))
	respondJSON(w, http.StatusNoContent, nil)
}

// Catalog handles GET /api/v1/checkout/catalog: the reconciled catalog view
// with the effective sellable stock per product and the repaired cart.
func (h *CheckoutHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkout.RefreshCatalog(r.Context(), sessionID(r))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Finalize handles POST /api/v1/checkout/finalize
func (h *CheckoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	bill, err := h.checkout.FinalizeSale(r.Context(), sessionID(r))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, bill)
}

// RegisterRoutes registers checkout routes on the mux
func (h *CheckoutHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/checkout/cart", h.GetCart)
	mux.HandleFunc("POST /api/v1/checkout/cart/items", h.AddItem)
	mux.HandleFunc("DELETE /api/v1/checkout/cart/items/{product_id}", h.RemoveItem)
	mux.HandleFunc("PUT /api/v1/checkout/client", h.SetClient)
	mux.HandleFunc("DELETE /api/v1/checkout/cart", h.Cancel)
	mux.HandleFunc("GET /api/v1/checkout/catalog", h.Catalog)
	mux.HandleFunc("POST /api/v1/checkout/finalize", h.Finalize)
}
