// internal/handlers/billing.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// BillingHandler exposes the sales history views.
type BillingHandler struct {
	billing ports.BillingService
	logger  *slog.Logger
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billing ports.BillingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		billing: billing,
		logger:  logger.With(slog.String("handler", "billing")),
	}
}

// List handles GET /api/v1/bills with optional client_id, product_id,
// date_from, date_to, limit and offset query parameters.
func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBillFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.billing.ListHistory(r.Context(), filter)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bills": entries,
		"count": len(entries),
	})
}

// Get handles GET /api/v1/bills/{bill_id}
func (h *BillingHandler) Get(w http.ResponseWriter, r *http.Request) {
	billID, err := uuid.Parse(r.PathValue("bill_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	entry, err := h.billing.GetBill(r.Context(), billID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	if entry == nil {
		respondError(w, http.StatusNotFound, "bill not found")
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

// RegisterRoutes registers billing routes on the mux
func (h *BillingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/bills", h.List)
	mux.HandleFunc("GET /api/v1/bills/{bill_id}", h.Get)
}

func parseBillFilter(r *http.Request) (ports.BillFilter, error) {
	var filter ports.BillFilter
	q := r.URL.Query()

	if raw := q.Get("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidFilter("client_id")
		}
		filter.ClientID = &id
	}
	if raw := q.Get("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidFilter("product_id")
		}
		filter.ProductID = &id
	}
	if raw := q.Get("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errInvalidFilter("date_from")
		}
		filter.From = &t
	}
	if raw := q.Get("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errInvalidFilter("date_to")
		}
		// Make the bound inclusive of the named day.
		end := t.AddDate(0, 0, 1)
		filter.To = &end
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, errInvalidFilter("limit")
		}
		filter.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, errInvalidFilter("offset")
		}
		filter.Offset = n
	}

	return filter, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string {
	return "invalid filter parameter: " + string(e)
}
