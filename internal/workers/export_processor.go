// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	redis_a "github.com/twinkerhq/pos-be/internal/adapters/redis_adapter"
	"github.com/twinkerhq/pos-be/internal/adapters/storage"
	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/pkg/config"
)

// ExportHeaders is the column order of every bills export, one row per
// sale line.
var ExportHeaders = []string{
	"Bill ID", "Issued At", "Client", "Product", "Quantity",
	"Unit Price", "Subtotal", "Bill Total",
}

// ExportProcessor builds bill exports in the background: it renders the
// workbook, uploads it to object storage and records a presigned download
// URL under the job id.
type ExportProcessor struct {
	billing ports.BillingService
	storage storage.StorageClient
	cache   ports.CacheRepository
	config  *config.Config
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(billing ports.BillingService, st storage.StorageClient, cache ports.CacheRepository, cfg *config.Config, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		billing: billing,
		storage: st,
		cache:   cache,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ProcessExportBills handles an export:bills task.
func (p *ExportProcessor) ProcessExportBills(ctx context.Context, t *asynq.Task) error {
	var payload ExportBillsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing bills export",
		slog.String("job_id", payload.JobID))

	p.setStatus(ctx, payload.JobID, ExportJobStatus{
		Status:    JobStatusRunning,
		CreatedAt: time.Now(),
	})

	entries, err := p.billing.ListHistory(ctx, payload.Filter)
	if err != nil {
		p.failJob(ctx, payload.JobID, fmt.Errorf("failed to load bill history: %w", err))
		return fmt.Errorf("failed to load bill history: %w", err)
	}

	data, err := BuildBillsWorkbook(entries)
	if err != nil {
		p.failJob(ctx, payload.JobID, fmt.Errorf("failed to build workbook: %w", err))
		return fmt.Errorf("failed to build workbook: %w", err)
	}

	key := fmt.Sprintf("exports/%s/bills_%s.xlsx",
		time.Now().Format("2006-01-02"), payload.JobID)
	if _, err := p.storage.Upload(ctx, key, bytes.NewReader(data),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
		p.failJob(ctx, payload.JobID, fmt.Errorf("failed to upload workbook: %w", err))
		return fmt.Errorf("failed to upload workbook: %w", err)
	}

	url, err := p.storage.GetPresignedURL(ctx, key, p.config.Export.URLExpiry)
	if err != nil {
		p.failJob(ctx, payload.JobID, fmt.Errorf("failed to presign download url: %w", err))
		return fmt.Errorf("failed to presign download url: %w", err)
	}

	now := time.Now()
	p.setStatus(ctx, payload.JobID, ExportJobStatus{
		Status:      JobStatusCompleted,
		URL:         url,
		Bills:       len(entries),
		CreatedAt:   now,
		CompletedAt: &now,
	})

	p.logger.InfoContext(ctx, "bills export completed",
		slog.String("job_id", payload.JobID),
		slog.Int("bills", len(entries)),
		slog.String("key", key))

	return nil
}

func (p *ExportProcessor) setStatus(ctx context.Context, jobID string, status ExportJobStatus) {
	key := redis_a.BuildKey(redis_a.PrefixExport, "job", jobID)
	if err := p.cache.SetWithTTL(ctx, key, status, 24*time.Hour); err != nil {
		p.logger.WarnContext(ctx, "failed to record export job status",
			slog.String("job_id", jobID),
			slog.Any("err", err))
	}
}

func (p *ExportProcessor) failJob(ctx context.Context, jobID string, cause error) {
	now := time.Now()
	p.setStatus(ctx, jobID, ExportJobStatus{
		Status:      JobStatusFailed,
		Error:       cause.Error(),
		CreatedAt:   now,
		CompletedAt: &now,
	})
}

// BuildBillsWorkbook renders bill entries as an xlsx workbook.
func BuildBillsWorkbook(entries []domain.BillEntry) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Bills")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range ExportHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, entry := range entries {
		for _, record := range exportRecords(entry) {
			row := sheet.AddRow()
			for _, value := range record {
				row.AddCell().Value = value
			}
		}
	}

	for i := range ExportHeaders {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

// BuildBillsCSV renders bill entries as a csv file with the same columns as
// the workbook export.
func BuildBillsCSV(entries []domain.BillEntry) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(ExportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, entry := range entries {
		for _, record := range exportRecords(entry) {
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buffer.Bytes(), nil
}

// exportRecords flattens one bill into export rows. A bill whose lines were
// lost keeps a single row so the header still shows up in the file.
func exportRecords(entry domain.BillEntry) [][]string {
	clientName := ""
	if entry.Client != nil {
		clientName = entry.Client.Name
	}

	billID := entry.Bill.ID.String()
	issuedAt := entry.Bill.IssuedAt.Format("2006-01-02 15:04:05")
	billTotal := entry.Bill.Amount.StringFixed(2)

	if len(entry.Lines) == 0 {
		return [][]string{{billID, issuedAt, clientName, "", "", "", "", billTotal}}
	}

	records := make([][]string, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		productName := ""
		if line.Product != nil {
			productName = line.Product.Name
		}
		records = append(records, []string{
			billID,
			issuedAt,
			clientName,
			productName,
			strconv.Itoa(line.Sale.Quantity),
			line.Sale.UnitPrice.StringFixed(2),
			line.Sale.Subtotal().StringFixed(2),
			billTotal,
		})
	}
	return records
}
