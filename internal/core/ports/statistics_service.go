// internal/core/ports/statistics_service.go
package ports

import (
	"context"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// StatisticsService is the application port for the sales rollup views.
type StatisticsService interface {
	// WeeklyEarnings returns one total per day for the Monday-anchored week
	// containing the reference time, zero-filled for days without sales.
	WeeklyEarnings(ctx context.Context) ([]domain.DailyTotal, error)

	// MonthlyEarnings returns one total per day of the current month,
	// zero-filled through the last day that has passed.
	MonthlyEarnings(ctx context.Context) ([]domain.DailyTotal, error)

	// AnnualEarnings returns one total per month of the current year.
	AnnualEarnings(ctx context.Context) ([]domain.MonthlyTotal, error)

	// TopProducts ranks products by units sold, descending. Limit caps the
	// result; a non-positive limit returns everything.
	TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error)
}
