// internal/workers/statistics_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// StatisticsProcessor warms the statistics cache on a schedule so the
// dashboard views stay hot between finalized sales.
type StatisticsProcessor struct {
	stats  ports.StatisticsService
	logger *slog.Logger
}

// NewStatisticsProcessor creates a new statistics processor
func NewStatisticsProcessor(stats ports.StatisticsService, logger *slog.Logger) *StatisticsProcessor {
	return &StatisticsProcessor{
		stats:  stats,
		logger: logger.With(slog.String("processor", "statistics")),
	}
}

// WarmStatistics handles a statistics:warm task by computing every rollup,
// which repopulates their cache entries as a side effect.
func (p *StatisticsProcessor) WarmStatistics(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "warming statistics cache")

	if _, err := p.stats.WeeklyEarnings(ctx); err != nil {
		return fmt.Errorf("failed to warm weekly earnings: %w", err)
	}
	if _, err := p.stats.MonthlyEarnings(ctx); err != nil {
		return fmt.Errorf("failed to warm monthly earnings: %w", err)
	}
	if _, err := p.stats.AnnualEarnings(ctx); err != nil {
		return fmt.Errorf("failed to warm annual earnings: %w", err)
	}
	if _, err := p.stats.TopProducts(ctx, 10); err != nil {
		return fmt.Errorf("failed to warm top products: %w", err)
	}

	p.logger.InfoContext(ctx, "statistics cache warmed")
	return nil
}
