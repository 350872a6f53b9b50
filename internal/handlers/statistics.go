// internal/handlers/statistics.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// StatisticsHandler exposes the sales rollup views.
type StatisticsHandler struct {
	stats  ports.StatisticsService
	logger *slog.Logger
}

// NewStatisticsHandler creates a new statistics handler
func NewStatisticsHandler(stats ports.StatisticsService, logger *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		stats:  stats,
		logger: logger.With(slog.String("handler", "statistics")),
	}
}

// Weekly handles GET /api/v1/statistics/weekly
func (h *StatisticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stats.WeeklyEarnings(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"days": totals})
}

// Monthly handles GET /api/v1/statistics/monthly
func (h *StatisticsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stats.MonthlyEarnings(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"days": totals})
}

// Annual handles GET /api/v1/statistics/annual
func (h *StatisticsHandler) Annual(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stats.AnnualEarnings(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"months": totals})
}

// TopProducts handles GET /api/v1/statistics/top-products?limit=N
func (h *StatisticsHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ranked, err := h.stats.TopProducts(r.Context(), limit)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": ranked})
}

// RegisterRoutes registers statistics routes on the mux
func (h *StatisticsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/statistics/weekly", h.Weekly)
	mux.HandleFunc("GET /api/v1/statistics/monthly", h.Monthly)
	mux.HandleFunc("GET /api/v1/statistics/annual", h.Annual)
	mux.HandleFunc("GET /api/v1/statistics/top-products", h.TopProducts)
}
