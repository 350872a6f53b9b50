// internal/handlers/export.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/twinkerhq/pos-be/internal/adapters/redis_adapter"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/workers"
)

// ExportHandler serves the sales history as downloadable files. Small
// exports are generated inline; large ones can be enqueued as a background
// job that lands in object storage.
type ExportHandler struct {
	billing ports.BillingService
	cache   ports.CacheRepository
	tasks   *asynq.Client
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(billing ports.BillingService, cache ports.CacheRepository, tasks *asynq.Client, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		billing: billing,
		cache:   cache,
		tasks:   tasks,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportBills handles GET /api/v1/export/bills. The bill filter parameters
// are the same as the history listing; format selects csv or xlsx.
func (h *ExportHandler) ExportBills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseBillFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		respondError(w, http.StatusBadRequest, "unsupported format: "+format)
		return
	}

	h.logger.InfoContext(ctx, "starting bills export",
		slog.String("format", format))

	entries, err := h.billing.ListHistory(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load bill history", slog.Any("err", err))
		respondError(w, http.StatusInternalServerError, "failed to retrieve data")
		return
	}

	var (
		data        []byte
		contentType string
		ext         string
	)
	switch format {
	case "csv":
		data, err = workers.BuildBillsCSV(entries)
		contentType = "text/csv"
		ext = "csv"
	default:
		data, err = workers.BuildBillsWorkbook(entries)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate export file", slog.Any("err", err))
		respondError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}

	filename := fmt.Sprintf("bills_export_%s.%s", time.Now().Format("20060102_150405"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response", slog.Any("err", err))
		return
	}

	h.logger.InfoContext(ctx, "bills export completed",
		slog.Int("bills", len(entries)),
		slog.String("filename", filename))
}

// EnqueueExport handles POST /api/v1/export/bills. It schedules a background
// export that uploads the workbook to object storage and records a download
// URL under the returned job id.
func (h *ExportHandler) EnqueueExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseBillFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload := workers.ExportBillsPayload{
		JobID:  uuid.New().String(),
		Filter: filter,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build export job")
		return
	}

	status := workers.ExportJobStatus{Status: workers.JobStatusPending, CreatedAt: time.Now()}
	statusKey := redis_a.BuildKey(redis_a.PrefixExport, "job", payload.JobID)
	if err := h.cache.SetWithTTL(ctx, statusKey, status, 24*time.Hour); err != nil {
		h.logger.WarnContext(ctx, "failed to record export job status", slog.Any("err", err))
	}

	info, err := h.tasks.EnqueueContext(ctx, asynq.NewTask(workers.TypeExportBills, raw),
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue export task", slog.Any("err", err))
		respondError(w, http.StatusInternalServerError, "failed to schedule export")
		return
	}

	h.logger.InfoContext(ctx, "export job enqueued",
		slog.String("job_id", payload.JobID),
		slog.String("task_id", info.ID))

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id": payload.JobID,
		"status": workers.JobStatusPending,
	})
}

// ExportStatus handles GET /api/v1/export/jobs/{job_id}
func (h *ExportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job id")
		return
	}

	var status workers.ExportJobStatus
	key := redis_a.BuildKey(redis_a.PrefixExport, "job", jobID)
	if err := h.cache.Get(r.Context(), key, &status); err != nil {
		respondError(w, http.StatusNotFound, "export job not found")
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// RegisterRoutes registers export routes on the mux
func (h *ExportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/export/bills", h.ExportBills)
	mux.HandleFunc("POST /api/v1/export/bills", h.EnqueueExport)
	mux.HandleFunc("GET /api/v1/export/jobs/{job_id}", h.ExportStatus)
}
