// internal/core/services/catalog_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
	"github.com/twinkerhq/pos-be/internal/core/services"
	"github.com/twinkerhq/pos-be/test/helpers"
	"github.com/twinkerhq/pos-be/test/mocks"
)

type catalogFixture struct {
	products  *mocks.MockProductRepository
	inventory *mocks.MockInventoryRepository
	cache     *mocks.MockCacheRepository
	service   *services.CatalogService
}

func newCatalogFixture(t *testing.T, withCache bool) *catalogFixture {
	ctrl := gomock.NewController(t)

	f := &catalogFixture{
		products:  mocks.NewMockProductRepository(ctrl),
		inventory: mocks.NewMockInventoryRepository(ctrl),
	}
	if withCache {
		f.cache = mocks.NewMockCacheRepository(ctrl)
		f.service = services.NewCatalogService(f.products, f.inventory, f.cache, helpers.TestLogger())
	} else {
		f.service = services.NewCatalogService(f.products, f.inventory, nil, helpers.TestLogger())
	}
	return f
}

func TestCatalogService_ListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("joins products with stock", func(t *testing.T) {
		f := newCatalogFixture(t, false)
		espresso := helpers.CreateTestProduct()
		latte := helpers.CreateTestProduct(func(p *domain.Product) { p.Name = "Latte" })

		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{*espresso, *latte}, nil)
		f.inventory.EXPECT().ListAll(ctx).Return([]domain.InventoryRecord{
			{ProductID: espresso.ID, Stock: 12},
		}, nil)

		entries, err := f.service.ListEntries(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 12, entries[0].Stock)
		assert.Equal(t, 0, entries[1].Stock, "product without a record lists at zero")
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		f := newCatalogFixture(t, true)
		espresso := helpers.CreateTestProduct()

		f.cache.EXPECT().
			GetOrSet(ctx, "catalog:entries", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{*espresso}, nil)
		f.inventory.EXPECT().ListAll(ctx).Return([]domain.InventoryRecord{}, nil)

		entries, err := f.service.ListEntries(ctx)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *catalogFixture {
		f := newCatalogFixture(t, false)
		f.products.EXPECT().ListAll(ctx).Return([]domain.Product{
			*helpers.CreateTestProduct(func(p *domain.Product) {
				p.Name = "Espresso"
				p.Description = "single origin arabica beans"
			}),
			*helpers.CreateTestProduct(func(p *domain.Product) { p.Name = "Double Espresso" }),
			*helpers.CreateTestProduct(func(p *domain.Product) { p.Name = "Croissant" }),
		}, nil)
		f.inventory.EXPECT().ListAll(ctx).Return([]domain.InventoryRecord{}, nil)
		return f
	}

	t.Run("case-insensitive substring match", func(t *testing.T) {
		f := setup(t)
		entries, err := f.service.Search(ctx, "  ESPRESSO ")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Espresso", entries[0].Product.Name)
		assert.Equal(t, "Double Espresso", entries[1].Product.Name)
	})

	t.Run("matches the description too", func(t *testing.T) {
		f := setup(t)
		entries, err := f.service.Search(ctx, "arabica")

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Espresso", entries[0].Product.Name)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		f := setup(t)
		entries, err := f.service.Search(ctx, "   ")

		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("no match returns an empty slice", func(t *testing.T) {
		f := setup(t)
		entries, err := f.service.Search(ctx, "tea")

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCatalogService_AddEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product and inventory record together", func(t *testing.T) {
		f := newCatalogFixture(t, true)

		f.products.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, product *domain.Product) error {
				assert.Equal(t, "Flat White", product.Name)
				assert.NotEqual(t, "", product.ID.String())
				return nil
			})
		f.inventory.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *domain.InventoryRecord) error {
				assert.Equal(t, 20, record.Stock)
				return nil
			})
		f.cache.EXPECT().Delete(ctx, "catalog:entries").Return(nil)

		entry, err := f.service.AddEntry(ctx, ports.EntryParams{
			Name:  "  Flat White ",
			Price: decimal.RequireFromString("2.90"),
			Stock: 20,
		})

		require.NoError(t, err)
		assert.Equal(t, "Flat White", entry.Product.Name)
		assert.Equal(t, 20, entry.Stock)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		f := newCatalogFixture(t, false)

		_, err := f.service.AddEntry(ctx, ports.EntryParams{
			Name:  "Flat White",
			Price: decimal.RequireFromString("2.90"),
			Stock: -1,
		})
		assert.ErrorContains(t, err, "stock cannot be negative")
	})

	t.Run("rejects invalid product", func(t *testing.T) {
		f := newCatalogFixture(t, false)

		_, err := f.service.AddEntry(ctx, ports.EntryParams{
			Name:  "   ",
			Price: decimal.RequireFromString("2.90"),
			Stock: 1,
		})
		assert.ErrorContains(t, err, "validation failed")
	})
}

func TestCatalogService_EditEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("updates product and stock", func(t *testing.T) {
		f := newCatalogFixture(t, true)
		product := helpers.CreateTestProduct()
		record := &domain.InventoryRecord{ProductID: product.ID, Stock: 5}

		f.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.products.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Product) error {
				assert.Equal(t, "Ristretto", p.Name)
				return nil
			})
		f.inventory.EXPECT().FindByProductID(ctx, product.ID).Return(record, nil)
		f.inventory.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domain.InventoryRecord) error {
				assert.Equal(t, 8, r.Stock)
				return nil
			})
		f.cache.EXPECT().Delete(ctx, "catalog:entries").Return(nil)

		err := f.service.EditEntry(ctx, product.ID, ports.EntryParams{
			Name:  "Ristretto",
			Price: decimal.RequireFromString("1.90"),
			Stock: 8,
		})
		assert.NoError(t, err)
	})

	t.Run("heals a missing inventory record", func(t *testing.T) {
		f := newCatalogFixture(t, false)
		product := helpers.CreateTestProduct()

		f.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.products.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.inventory.EXPECT().FindByProductID(ctx, product.ID).Return(nil, nil)
		f.inventory.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domain.InventoryRecord) error {
				assert.Equal(t, product.ID, r.ProductID)
				assert.Equal(t, 3, r.Stock)
				return nil
			})

		err := f.service.EditEntry(ctx, product.ID, ports.EntryParams{
			Name:  product.Name,
			Price: product.Price,
			Stock: 3,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newCatalogFixture(t, false)
		product := helpers.CreateTestProduct()

		f.products.EXPECT().FindByID(ctx, product.ID).Return(nil, nil)

		err := f.service.EditEntry(ctx, product.ID, ports.EntryParams{
			Name:  "Whatever",
			Price: decimal.RequireFromString("1.00"),
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_DeleteEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("removes product and its record", func(t *testing.T) {
		f := newCatalogFixture(t, true)
		product := helpers.CreateTestProduct()

		f.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.inventory.EXPECT().DeleteByProductID(ctx, product.ID).Return(nil)
		f.products.EXPECT().Delete(ctx, product.ID).Return(nil)
		f.cache.EXPECT().Delete(ctx, "catalog:entries").Return(nil)

		assert.NoError(t, f.service.DeleteEntry(ctx, product.ID))
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newCatalogFixture(t, false)
		product := helpers.CreateTestProduct()

		f.products.EXPECT().FindByID(ctx, product.ID).Return(nil, nil)

		assert.ErrorIs(t, f.service.DeleteEntry(ctx, product.ID), domain.ErrNotFound)
	})
}
