// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/twinkerhq/pos-be/internal/adapters/storage"
	"github.com/twinkerhq/pos-be/internal/pkg/config"
)

// CleanupProcessor expires old export artifacts, both the uploaded objects
// and any temp files left behind by aborted generations.
type CleanupProcessor struct {
	storage storage.StorageClient
	config  *config.Config
	logger  *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(st storage.StorageClient, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		storage: st,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupExports removes uploaded export objects older than the retention
// window. Export keys carry their date as the second path segment, so the
// cutoff check never needs a HEAD per object.
func (p *CleanupProcessor) CleanupExports(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up expired exports")

	keys, err := p.storage.List(ctx, "exports/")
	if err != nil {
		return fmt.Errorf("failed to list export objects: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -p.config.Export.RetentionDays)

	var deleted int
	for _, key := range keys {
		parts := strings.Split(key, "/")
		if len(parts) < 3 {
			continue
		}
		day, err := time.Parse("2006-01-02", parts[1])
		if err != nil {
			p.logger.WarnContext(ctx, "skipping export object with unexpected key",
				slog.String("key", key))
			continue
		}
		if !day.Before(cutoff) {
			continue
		}

		if err := p.storage.Delete(ctx, key); err != nil {
			p.logger.WarnContext(ctx, "failed to delete export object",
				slog.String("key", key),
				slog.Any("err", err))
			continue
		}
		deleted++
	}

	p.logger.InfoContext(ctx, "expired exports cleaned up",
		slog.Int("objects_deleted", deleted))

	return nil
}

// CleanupTempFiles removes stale files from the export temp directory.
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up temp files")

	tempDir := p.config.Export.TempDir
	maxAge := 24 * time.Hour

	var deletedCount int
	err := filepath.Walk(tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				p.logger.WarnContext(ctx, "failed to delete temp file",
					slog.String("file", path),
					slog.Any("err", err))
			} else {
				deletedCount++
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))

	return nil
}
