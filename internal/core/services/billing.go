// internal/core/services/billing.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// BillingService assembles the sales history: bill headers joined with their
// sale lines, products and clients. Deleted products and clients leave nil
// slots on the entry rather than placeholder records.
type BillingService struct {
	bills    ports.BillRepository
	sales    ports.SaleRepository
	products ports.ProductRepository
	clients  ports.ClientRepository
	logger   *slog.Logger
}

// Statically assert that *BillingService implements the BillingService interface.
var _ ports.BillingService = (*BillingService)(nil)

// NewBillingService creates a new billing service
func NewBillingService(
	bills ports.BillRepository,
	sales ports.SaleRepository,
	products ports.ProductRepository,
	clients ports.ClientRepository,
	logger *slog.Logger,
) *BillingService {
	return &BillingService{
		bills:    bills,
		sales:    sales,
		products: products,
		clients:  clients,
		logger:   logger.With(slog.String("service", "billing")),
	}
}

// ListHistory returns the joined entries for every bill matching the filter,
// newest first (ordering comes from the repository).
func (s *BillingService) ListHistory(ctx context.Context, filter ports.BillFilter) ([]domain.BillEntry, error) {
	bills, err := s.bills.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	products, err := s.productIndex(ctx)
	if err != nil {
		return nil, err
	}

	clientCache := make(map[uuid.UUID]*domain.Client)
	entries := make([]domain.BillEntry, 0, len(bills))
	for _, bill := range bills {
		entry, err := s.assembleEntry(ctx, bill, products, clientCache)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetBill returns the joined entry for one bill, or (nil, nil) when the bill
// does not exist.
func (s *BillingService) GetBill(ctx context.Context, billID uuid.UUID) (*domain.BillEntry, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill: %w", err)
	}
	if bill == nil {
		return nil, nil
	}

	products, err := s.productIndex(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.assembleEntry(ctx, *bill, products, make(map[uuid.UUID]*domain.Client))
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BillingService) assembleEntry(
	ctx context.Context,
	bill domain.Bill,
	products map[uuid.UUID]domain.Product,
	clientCache map[uuid.UUID]*domain.Client,
) (domain.BillEntry, error) {
	sales, err := s.sales.ListByBillID(ctx, bill.ID)
	if err != nil {
		return domain.BillEntry{}, fmt.Errorf("failed to list sales for bill %s: %w", bill.ID, err)
	}

	lines := make([]domain.SaleLine, len(sales))
	for i, sale := range sales {
		line := domain.SaleLine{Sale: sale}
		if p, ok := products[sale.ProductID]; ok {
			line.Product = &p
		}
		lines[i] = line
	}

	entry := domain.BillEntry{Bill: bill, Lines: lines}
	if bill.ClientID != nil {
		client, err := s.lookupClient(ctx, *bill.ClientID, clientCache)
		if err != nil {
			return domain.BillEntry{}, err
		}
		entry.Client = client
	}
	return entry, nil
}

// lookupClient resolves a client id through the per-call cache. A deleted
// client resolves to nil and the nil is cached too.
func (s *BillingService) lookupClient(ctx context.Context, id uuid.UUID, cache map[uuid.UUID]*domain.Client) (*domain.Client, error) {
	if client, ok := cache[id]; ok {
		return client, nil
	}
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", id, err)
	}
	cache[id] = client
	return client, nil
}

func (s *BillingService) productIndex(ctx context.Context) (map[uuid.UUID]domain.Product, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	index := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index, nil
}
