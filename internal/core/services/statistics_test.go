// internal/core/services/statistics_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/test/helpers"
	"github.com/twinkerhq/pos-be/test/mocks"
)

// Wednesday, with the week running Mon Aug 24 through Sun Aug 30.
var statsRef = time.Date(2026, 8, 26, 14, 0, 0, 0, time.UTC)

type statsFixture struct {
	bills    *mocks.MockBillRepository
	sales    *mocks.MockSaleRepository
	products *mocks.MockProductRepository
	cache    *mocks.MockCacheRepository
	service  *StatisticsService
}

func newStatsFixture(t *testing.T, withCache bool) *statsFixture {
	ctrl := gomock.NewController(t)

	f := &statsFixture{
		bills:    mocks.NewMockBillRepository(ctrl),
		sales:    mocks.NewMockSaleRepository(ctrl),
		products: mocks.NewMockProductRepository(ctrl),
	}

	var cache *mocks.MockCacheRepository
	if withCache {
		f.cache = mocks.NewMockCacheRepository(ctrl)
		cache = f.cache
	}

	if cache != nil {
		f.service = NewStatisticsService(f.bills, f.sales, f.products, cache, helpers.TestLogger())
	} else {
		f.service = NewStatisticsService(f.bills, f.sales, f.products, nil, helpers.TestLogger())
	}
	f.service.now = func() time.Time { return statsRef }
	return f
}

func billAt(amount string, issuedAt time.Time) domain.Bill {
	return domain.Bill{
		ID:       uuid.New(),
		IssuedAt: issuedAt,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestStatisticsService_WeeklyEarnings(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, false)

	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	f.bills.EXPECT().ListSince(ctx, weekStart).Return([]domain.Bill{
		billAt("10.00", weekStart.Add(9*time.Hour)),           // Monday
		billAt("5.50", weekStart.Add(9*time.Hour+time.Hour)),  // Monday again
		billAt("7.25", weekStart.AddDate(0, 0, 2)),            // Wednesday
	}, nil)

	totals, err := f.service.WeeklyEarnings(ctx)

	require.NoError(t, err)
	require.Len(t, totals, 7, "the series always has seven points")

	assert.Equal(t, weekStart, totals[0].Date)
	assert.True(t, totals[0].Amount.Equal(decimal.RequireFromString("15.50")))
	assert.True(t, totals[1].Amount.IsZero())
	assert.True(t, totals[2].Amount.Equal(decimal.RequireFromString("7.25")))

	// Thursday through Sunday have not happened yet but still appear as zeros.
	for i := 3; i < 7; i++ {
		assert.True(t, totals[i].Amount.IsZero(), "day %d should be zero", i)
		assert.Equal(t, weekStart.AddDate(0, 0, i), totals[i].Date)
	}
}

func TestStatisticsService_MonthlyEarnings(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, false)

	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	f.bills.EXPECT().ListSince(ctx, monthStart).Return([]domain.Bill{
		billAt("3.00", time.Date(2026, 8, 5, 10, 0, 0, 0, time.UTC)),
		billAt("4.00", time.Date(2026, 8, 5, 16, 0, 0, 0, time.UTC)),
		billAt("9.99", time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)),
		// A stray bill from the next month must not leak into the series.
		billAt("50.00", time.Date(2026, 9, 1, 0, 30, 0, 0, time.UTC)),
	}, nil)

	totals, err := f.service.MonthlyEarnings(ctx)

	require.NoError(t, err)
	require.Len(t, totals, 31, "August has 31 days")

	assert.True(t, totals[4].Amount.Equal(decimal.RequireFromString("7.00")))
	assert.True(t, totals[30].Amount.Equal(decimal.RequireFromString("9.99")))

	var sum decimal.Decimal
	for _, dt := range totals {
		sum = sum.Add(dt.Amount)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("16.99")))
}

func TestStatisticsService_AnnualEarnings(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture(t, false)

	yearStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.bills.EXPECT().ListSince(ctx, yearStart).Return([]domain.Bill{
		billAt("100.00", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)),
		billAt("20.00", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		billAt("8.00", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)),
	}, nil)

	totals, err := f.service.AnnualEarnings(ctx)

	require.NoError(t, err)
	require.Len(t, totals, 12)

	assert.Equal(t, time.March, totals[2].Month)
	assert.True(t, totals[2].Amount.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, totals[7].Amount.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, totals[0].Amount.IsZero())
	for _, mt := range totals {
		assert.Equal(t, 2026, mt.Year)
	}
}

func TestStatisticsService_TopProducts(t *testing.T) {
	ctx := context.Background()

	espressoID := uuid.New()
	latteID := uuid.New()
	mochaID := uuid.New()

	catalog := []domain.Product{
		{ID: espressoID, Name: "Espresso", Price: decimal.RequireFromString("1.80")},
		{ID: latteID, Name: "Latte", Price: decimal.RequireFromString("2.60")},
		{ID: mochaID, Name: "Mocha", Price: decimal.RequireFromString("2.60")},
	}
	history := []domain.Sale{
		{ProductID: espressoID, Quantity: 5, UnitPrice: decimal.RequireFromString("1.80")},
		{ProductID: espressoID, Quantity: 5, UnitPrice: decimal.RequireFromString("1.80")},
		// Latte and Mocha tie on units and revenue; name breaks the tie.
		{ProductID: mochaID, Quantity: 4, UnitPrice: decimal.RequireFromString("2.60")},
		{ProductID: latteID, Quantity: 4, UnitPrice: decimal.RequireFromString("2.60")},
	}

	t.Run("ranks by units then revenue then name", func(t *testing.T) {
		f := newStatsFixture(t, false)
		f.sales.EXPECT().ListSince(ctx, time.Time{}).Return(history, nil)
		f.products.EXPECT().ListAll(ctx).Return(catalog, nil)

		ranked, err := f.service.TopProducts(ctx, 10)

		require.NoError(t, err)
		require.Len(t, ranked, 3)

		assert.Equal(t, "Espresso", ranked[0].Name)
		assert.Equal(t, 10, ranked[0].UnitsSold)
		assert.True(t, ranked[0].Revenue.Equal(decimal.RequireFromString("18.00")))

		assert.Equal(t, "Latte", ranked[1].Name)
		assert.Equal(t, "Mocha", ranked[2].Name)
	})

	t.Run("limit caps the list", func(t *testing.T) {
		f := newStatsFixture(t, false)
		f.sales.EXPECT().ListSince(ctx, time.Time{}).Return(history, nil)
		f.products.EXPECT().ListAll(ctx).Return(catalog, nil)

		ranked, err := f.service.TopProducts(ctx, 1)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "Espresso", ranked[0].Name)
	})

	t.Run("sale for a deleted product keeps its tally without a name", func(t *testing.T) {
		f := newStatsFixture(t, false)
		orphanID := uuid.New()
		f.sales.EXPECT().ListSince(ctx, time.Time{}).Return([]domain.Sale{
			{ProductID: orphanID, Quantity: 2, UnitPrice: decimal.RequireFromString("1.00")},
		}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{}, nil)

		ranked, err := f.service.TopProducts(ctx, 10)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, orphanID, ranked[0].ProductID)
		assert.Empty(t, ranked[0].Name)
		assert.Equal(t, 2, ranked[0].UnitsSold)
	})
}

func TestStatisticsService_CacheBehavior(t *testing.T) {
	ctx := context.Background()

	t.Run("rollups read through the cache", func(t *testing.T) {
		f := newStatsFixture(t, true)

		cached := []domain.DailyTotal{
			{Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), Amount: decimal.RequireFromString("42.00")},
		}
		f.cache.EXPECT().
			GetOrSet(ctx, "stats:weekly", gomock.Any(), gomock.Any(), statsCacheTTL).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}, _ func() (interface{}, error), _ time.Duration) error {
				*dest.(*[]domain.DailyTotal) = cached
				return nil
			})

		totals, err := f.service.WeeklyEarnings(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, totals)
	})

	t.Run("cache failure falls back to a direct compute", func(t *testing.T) {
		f := newStatsFixture(t, true)

		f.cache.EXPECT().
			GetOrSet(ctx, "stats:weekly", gomock.Any(), gomock.Any(), statsCacheTTL).
			Return(errors.New("redis down"))

		weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		f.bills.EXPECT().ListSince(ctx, weekStart).Return([]domain.Bill{
			billAt("10.00", weekStart),
		}, nil)

		totals, err := f.service.WeeklyEarnings(ctx)

		require.NoError(t, err)
		require.Len(t, totals, 7)
		assert.True(t, totals[0].Amount.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("per-limit cache keys for top products", func(t *testing.T) {
		f := newStatsFixture(t, true)

		f.cache.EXPECT().
			GetOrSet(ctx, "stats:top_products:5", gomock.Any(), gomock.Any(), statsCacheTTL).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}, compute func() (interface{}, error), _ time.Duration) error {
				result, err := compute()
				if err != nil {
					return err
				}
				*dest.(*[]domain.ProductSales) = result.([]domain.ProductSales)
				return nil
			})
		f.sales.EXPECT().ListSince(ctx, time.Time{}).Return([]domain.Sale{}, nil)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{}, nil)

		ranked, err := f.service.TopProducts(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})
}
