// internal/core/services/statistics.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

const statsCacheTTL = time.Minute * 10

// StatisticsService computes sales rollups from the bill and sale history.
// Results are cached under stats:* keys; finalizing a sale invalidates the
// whole prefix.
type StatisticsService struct {
	bills    ports.BillRepository
	sales    ports.SaleRepository
	products ports.ProductRepository
	cache    ports.CacheRepository
	logger   *slog.Logger

	// now is swapped in tests to pin the reference date.
	now func() time.Time
}

// Statically assert that *StatisticsService implements the StatisticsService interface.
var _ ports.StatisticsService = (*StatisticsService)(nil)

// NewStatisticsService creates a new statistics service
func NewStatisticsService(
	bills ports.BillRepository,
	sales ports.SaleRepository,
	products ports.ProductRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *StatisticsService {
	return &StatisticsService{
		bills:    bills,
		sales:    sales,
		products: products,
		cache:    cache,
		logger:   logger.With(slog.String("service", "statistics")),
		now:      time.Now,
	}
}

// WeeklyEarnings returns a total per day for the Monday-anchored week
// containing today. Days without sales carry a zero amount, and future days
// of the week are included as zeros so the series always has seven points.
func (s *StatisticsService) WeeklyEarnings(ctx context.Context) ([]domain.DailyTotal, error) {
	var totals []domain.DailyTotal
	err := s.cached(ctx, "stats:weekly", &totals, func() (interface{}, error) {
		start := domain.WeekStart(s.now())
		bills, err := s.bills.ListSince(ctx, start)
		if err != nil {
			return nil, fmt.Errorf("failed to list bills: %w", err)
		}

		out := make([]domain.DailyTotal, 7)
		for i := range out {
			out[i] = domain.DailyTotal{Date: start.AddDate(0, 0, i), Amount: decimal.Zero}
		}
		for _, bill := range bills {
			day := int(bill.IssuedAt.Sub(start).Hours() / 24)
			if day < 0 || day > 6 {
				continue
			}
			out[day].Amount = out[day].Amount.Add(bill.Amount)
		}
		return out, nil
	})
	return totals, err
}

// MonthlyEarnings returns a total per day of the current month, one entry
// for every day from the 1st through the end of the month.
func (s *StatisticsService) MonthlyEarnings(ctx context.Context) ([]domain.DailyTotal, error) {
	var totals []domain.DailyTotal
	err := s.cached(ctx, "stats:monthly", &totals, func() (interface{}, error) {
		ref := s.now()
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		daysInMonth := start.AddDate(0, 1, -1).Day()

		bills, err := s.bills.ListSince(ctx, start)
		if err != nil {
			return nil, fmt.Errorf("failed to list bills: %w", err)
		}

		out := make([]domain.DailyTotal, daysInMonth)
		for i := range out {
			out[i] = domain.DailyTotal{Date: start.AddDate(0, 0, i), Amount: decimal.Zero}
		}
		for _, bill := range bills {
			if bill.IssuedAt.Month() != ref.Month() || bill.IssuedAt.Year() != ref.Year() {
				continue
			}
			out[bill.IssuedAt.Day()-1].Amount = out[bill.IssuedAt.Day()-1].Amount.Add(bill.Amount)
		}
		return out, nil
	})
	return totals, err
}

// AnnualEarnings returns a total per month of the current year.
func (s *StatisticsService) AnnualEarnings(ctx context.Context) ([]domain.MonthlyTotal, error) {
	var totals []domain.MonthlyTotal
	err := s.cached(ctx, "stats:annual", &totals, func() (interface{}, error) {
		ref := s.now()
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())

		bills, err := s.bills.ListSince(ctx, start)
		if err != nil {
			return nil, fmt.Errorf("failed to list bills: %w", err)
		}

		out := make([]domain.MonthlyTotal, 12)
		for i := range out {
			out[i] = domain.MonthlyTotal{Year: ref.Year(), Month: time.Month(i + 1), Amount: decimal.Zero}
		}
		for _, bill := range bills {
			if bill.IssuedAt.Year() != ref.Year() {
				continue
			}
			m := int(bill.IssuedAt.Month()) - 1
			out[m].Amount = out[m].Amount.Add(bill.Amount)
		}
		return out, nil
	})
	return totals, err
}

// TopProducts ranks products by units sold across the whole sale history.
// Ties break by revenue, then by name for a stable order.
func (s *StatisticsService) TopProducts(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	key := fmt.Sprintf("stats:top_products:%d", limit)
	var ranked []domain.ProductSales
	err := s.cached(ctx, key, &ranked, func() (interface{}, error) {
		sales, err := s.sales.ListSince(ctx, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("failed to list sales: %w", err)
		}

		products, err := s.products.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		names := make(map[uuid.UUID]string, len(products))
		for _, p := range products {
			names[p.ID] = p.Name
		}

		byProduct := make(map[uuid.UUID]*domain.ProductSales)
		for _, sale := range sales {
			ps, ok := byProduct[sale.ProductID]
			if !ok {
				ps = &domain.ProductSales{
					ProductID: sale.ProductID,
					Name:      names[sale.ProductID],
					Revenue:   decimal.Zero,
				}
				byProduct[sale.ProductID] = ps
			}
			ps.UnitsSold += sale.Quantity
			ps.Revenue = ps.Revenue.Add(sale.Subtotal())
		}

		out := make([]domain.ProductSales, 0, len(byProduct))
		for _, ps := range byProduct {
			out = append(out, *ps)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].UnitsSold != out[j].UnitsSold {
				return out[i].UnitsSold > out[j].UnitsSold
			}
			if !out[i].Revenue.Equal(out[j].Revenue) {
				return out[i].Revenue.GreaterThan(out[j].Revenue)
			}
			return out[i].Name < out[j].Name
		})

		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return out, nil
	})
	return ranked, err
}

// cached reads the rollup through the cache when one is configured, falling
// back to a direct compute on cache failure.
func (s *StatisticsService) cached(ctx context.Context, key string, dest interface{}, compute func() (interface{}, error)) error {
	if s.cache == nil {
		return s.computeInto(dest, compute)
	}
	if err := s.cache.GetOrSet(ctx, key, dest, compute, statsCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "statistics cache read failed, computing directly",
			slog.String("key", key), "err", err)
		return s.computeInto(dest, compute)
	}
	return nil
}

func (s *StatisticsService) computeInto(dest interface{}, compute func() (interface{}, error)) error {
	result, err := compute()
	if err != nil {
		return err
	}
	switch d := dest.(type) {
	case *[]domain.DailyTotal:
		*d = result.([]domain.DailyTotal)
	case *[]domain.MonthlyTotal:
		*d = result.([]domain.MonthlyTotal)
	case *[]domain.ProductSales:
		*d = result.([]domain.ProductSales)
	default:
		return fmt.Errorf("unsupported destination type %T", dest)
	}
	return nil
}
