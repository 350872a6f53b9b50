// internal/workers/tasks.go
package workers

import (
	"time"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// Task type names routed by the asynq mux.
const (
	TypeExportBills      = "export:bills"
	TypeWarmStatistics   = "statistics:warm"
	TypeCleanupExports   = "cleanup:exports"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

// Export job lifecycle states, persisted in the cache under the job id.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ExportBillsPayload is the payload of an export:bills task.
type ExportBillsPayload struct {
	JobID  string           `json:"job_id"`
	Filter ports.BillFilter `json:"filter"`
}

// ExportJobStatus is the cached state of a background export job. URL is set
// once the workbook has been uploaded and presigned.
type ExportJobStatus struct {
	Status      string     `json:"status"`
	URL         string     `json:"url,omitempty"`
	Error       string     `json:"error,omitempty"`
	Bills       int        `json:"bills,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
