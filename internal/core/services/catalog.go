// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

const (
	catalogCacheKey = "catalog:entries"
	catalogCacheTTL = time.Minute * 5
)

// CatalogService maintains products and their stock records as one unit: an
// entry added through here always gets both rows, and deleting a product
// takes its inventory record with it.
type CatalogService struct {
	products  ports.ProductRepository
	inventory ports.InventoryRepository
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(
	products ports.ProductRepository,
	inventory ports.InventoryRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		products:  products,
		inventory: inventory,
		cache:     cache,
		logger:    logger.With(slog.String("service", "catalog")),
	}
}

// ListEntries returns every product joined with its stock, reading through
// the cache when one is configured.
func (s *CatalogService) ListEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	if s.cache == nil {
		return s.loadEntries(ctx)
	}

	var entries []domain.CatalogEntry
	err := s.cache.GetOrSet(ctx, catalogCacheKey, &entries, func() (interface{}, error) {
		return s.loadEntries(ctx)
	}, catalogCacheTTL)
	if err != nil {
		// The cache is an accelerator, not a dependency; fall back to the store.
		s.logger.WarnContext(ctx, "catalog cache read failed, falling back to store", "err", err)
		return s.loadEntries(ctx)
	}
	return entries, nil
}

// Search returns the entries whose product name or description contains the
// query, case-insensitively. An empty query returns everything.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.CatalogEntry, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return entries, nil
	}

	matched := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Product.Name), query) ||
			strings.Contains(strings.ToLower(e.Product.Description), query) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// AddEntry creates a product together with its inventory record.
func (s *CatalogService) AddEntry(ctx context.Context, params ports.EntryParams) (*domain.CatalogEntry, error) {
	product := &domain.Product{
		Name:        strings.TrimSpace(params.Name),
		Price:       params.Price,
		Description: strings.TrimSpace(params.Description),
	}
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if params.Stock < 0 {
		return nil, fmt.Errorf("validation failed: stock cannot be negative")
	}
	product.PrepareForStorage()

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	record := &domain.InventoryRecord{
		ID:        uuid.New(),
		ProductID: product.ID,
		Stock:     params.Stock,
		UpdatedAt: time.Now(),
	}
	if err := s.inventory.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to insert inventory record: %w", err)
	}

	s.invalidate(ctx)

	s.logger.InfoContext(ctx, "catalog entry added",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name),
		slog.Int("stock", params.Stock))

	return &domain.CatalogEntry{Product: *product, Stock: params.Stock}, nil
}

// EditEntry updates a product's descriptive fields and its stock count.
func (s *CatalogService) EditEntry(ctx context.Context, productID uuid.UUID, params ports.EntryParams) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}

	product.Name = strings.TrimSpace(params.Name)
	product.Price = params.Price
	product.Description = strings.TrimSpace(params.Description)
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if params.Stock < 0 {
		return fmt.Errorf("validation failed: stock cannot be negative")
	}
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	record, err := s.inventory.FindByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load inventory record: %w", err)
	}
	if record == nil {
		// Heal a missing record instead of leaving the product stockless.
		record = &domain.InventoryRecord{ID: uuid.New(), ProductID: productID}
		record.Stock = params.Stock
		record.UpdatedAt = time.Now()
		if err := s.inventory.Insert(ctx, record); err != nil {
			return fmt.Errorf("failed to insert inventory record: %w", err)
		}
	} else {
		record.Stock = params.Stock
		record.UpdatedAt = time.Now()
		if err := s.inventory.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update inventory record: %w", err)
		}
	}

	s.invalidate(ctx)
	return nil
}

// DeleteEntry removes a product and its inventory record. Historical sale
// lines referencing the product are kept; history views render the gap.
func (s *CatalogService) DeleteEntry(ctx context.Context, productID uuid.UUID) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}

	if err := s.inventory.DeleteByProductID(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx)

	s.logger.InfoContext(ctx, "catalog entry deleted",
		slog.String("product_id", productID.String()))
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate catalog cache", "err", err)
	}
}

func (s *CatalogService) loadEntries(ctx context.Context) ([]domain.CatalogEntry, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	records, err := s.inventory.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	stockByProduct := make(map[uuid.UUID]int, len(records))
	for _, r := range records {
		stockByProduct[r.ProductID] = r.Stock
	}

	entries := make([]domain.CatalogEntry, len(products))
	for i, p := range products {
		entries[i] = domain.CatalogEntry{Product: p, Stock: stockByProduct[p.ID]}
	}
	return entries, nil
}
