// internal/core/services/checkout.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// checkoutSession holds the volatile state of one till: the cart being
// assembled and the optional client the sale will be attributed to.
type checkoutSession struct {
	cart     *domain.Cart
	clientID *uuid.UUID
}

// CheckoutService orchestrates cart assembly, catalog reconciliation and
// sale finalization. Sessions live in memory; the registry lock only guards
// the session map and the per-call cart mutations, which are short.
type CheckoutService struct {
	products  ports.ProductRepository
	inventory ports.InventoryRepository
	clients   ports.ClientRepository
	bills     ports.BillRepository
	sales     ports.SaleRepository
	cache     ports.CacheRepository
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

// Statically assert that *CheckoutService implements the CheckoutService interface.
var _ ports.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	products ports.ProductRepository,
	inventory ports.InventoryRepository,
	clients ports.ClientRepository,
	bills ports.BillRepository,
	sales ports.SaleRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		products:  products,
		inventory: inventory,
		clients:   clients,
		bills:     bills,
		sales:     sales,
		cache:     cache,
		logger:    logger.With(slog.String("service", "checkout")),
		sessions:  make(map[string]*checkoutSession),
	}
}

// session returns the session for the id, creating an empty one on first use.
// Callers must hold s.mu.
func (s *CheckoutService) session(sessionID string) *checkoutSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &checkoutSession{cart: domain.NewCart()}
		s.sessions[sessionID] = sess
	}
	return sess
}

// AddToCart adds one unit of the product to the session's cart. The add is
// refused with domain.ErrOutOfStock when the warehouse holds no more units
// than the cart already claims, so the cart can never be built past stock.
func (s *CheckoutService) AddToCart(ctx context.Context, sessionID string, productID uuid.UUID) (domain.LineItem, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return domain.LineItem{}, domain.ErrNotFound
	}

	record, err := s.inventory.FindByProductID(ctx, productID)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("failed to load inventory: %w", err)
	}

	stock := 0
	if record != nil {
		stock = record.Stock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	entry := domain.CatalogEntry{Product: *product, Stock: stock}
	if domain.EffectiveStock(sess.cart, entry) < 1 {
		return domain.LineItem{}, domain.ErrOutOfStock
	}

	sess.cart.AddProduct(*product)

	s.logger.DebugContext(ctx, "added product to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID.String()),
		slog.Int("quantity", sess.cart.QuantityOf(productID)))

	_, li := findLine(sess.cart.Lines(), productID)
	return li, nil
}

// RemoveLine deletes the product's line from the session's cart.
func (s *CheckoutService) RemoveLine(sessionID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID).cart.RemoveLine(productID)
}

// RemoveOneUnit decrements the product's line by one unit.
func (s *CheckoutService) RemoveOneUnit(sessionID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID).cart.RemoveOneUnit(productID)
}

// SetClient attributes the pending sale to a client, or clears the
// attribution when clientID is nil.
func (s *CheckoutService) SetClient(ctx context.Context, sessionID string, clientID *uuid.UUID) error {
	if clientID != nil {
		client, err := s.clients.FindByID(ctx, *clientID)
		if err != nil {
			return fmt.Errorf("failed to load client: %w", err)
		}
		if client == nil {
			return domain.ErrNotFound
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID).clientID = clientID
	return nil
}

// Cancel discards the session's cart and client attribution.
func (s *CheckoutService) Cancel(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)
	sess.cart.Clear()
	sess.clientID = nil
}

// CurrentLines returns a snapshot of the session's cart lines.
func (s *CheckoutService) CurrentLines(sessionID string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).cart.Lines()
}

// CurrentTotal returns the session's running total.
func (s *CheckoutService) CurrentTotal(sessionID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).cart.Total()
}

// RefreshCatalog reloads the catalog, repairs the session's cart against the
// current warehouse stock and returns the entries with their effective
// sellable counts. A product whose stock dropped to zero loses its cart line;
// a line claiming more than the stock is clamped down to it.
func (s *CheckoutService) RefreshCatalog(ctx context.Context, sessionID string) (*ports.ReconcileResult, error) {
	entries, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	available := make(map[uuid.UUID]int, len(entries))
	for _, entry := range entries {
		if sess.cart.ClampToStock(entry) {
			s.logger.InfoContext(ctx, "cart line adjusted to stock",
				slog.String("session_id", sessionID),
				slog.String("product_id", entry.Product.ID.String()),
				slog.Int("stock", entry.Stock))
		}
		available[entry.Product.ID] = domain.EffectiveStock(sess.cart, entry)
	}

	// A line whose product vanished from the catalog has nothing left to
	// sell against; drop it rather than let it survive the refresh.
	for _, li := range sess.cart.Lines() {
		if _, ok := available[li.ProductID]; !ok {
			sess.cart.RemoveLine(li.ProductID)
			s.logger.WarnContext(ctx, "dropped cart line for deleted product",
				slog.String("session_id", sessionID),
				slog.String("product_id", li.ProductID.String()))
		}
	}

	return &ports.ReconcileResult{
		Entries:   entries,
		Available: available,
		Lines:     sess.cart.Lines(),
		Total:     sess.cart.Total(),
	}, nil
}

// FinalizeSale turns the session's cart into durable history: the bill header
// is written first, then the sale lines, then the per-product stock
// decrements, and finally the cart is cleared. Only the bill insert is fatal;
// later step failures are logged and skipped so a finalized bill is never
// rolled back by a bookkeeping hiccup.
func (s *CheckoutService) FinalizeSale(ctx context.Context, sessionID string) (*domain.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if sess.cart.IsEmpty() {
		return nil, domain.ErrInvalidSale
	}

	lines := sess.cart.Lines()
	now := time.Now()
	bill := &domain.Bill{
		ID:        uuid.New(),
		ClientID:  sess.clientID,
		IssuedAt:  now,
		Amount:    sess.cart.Total(),
		CreatedAt: now,
	}

	if err := s.bills.Insert(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to insert bill: %w", err)
	}

	sales := make([]domain.Sale, len(lines))
	for i, li := range lines {
		sales[i] = domain.Sale{
			ID:        uuid.New(),
			BillID:    bill.ID,
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}

	if err := s.sales.InsertBatch(ctx, sales); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert sale lines",
			slog.String("bill_id", bill.ID.String()),
			"err", err)
	}

	for _, li := range lines {
		s.decrementStock(ctx, bill.ID, li)
	}

	sess.cart.Clear()
	sess.clientID = nil

	s.invalidateStatistics(ctx)

	s.logger.InfoContext(ctx, "sale finalized",
		slog.String("bill_id", bill.ID.String()),
		slog.Int("line_count", len(lines)),
		slog.String("amount", bill.Amount.String()))

	return bill, nil
}

// decrementStock subtracts a sold quantity from the product's inventory
// record. A missing record is skipped with a warning; the sale itself stands.
func (s *CheckoutService) decrementStock(ctx context.Context, billID uuid.UUID, li domain.LineItem) {
	record, err := s.inventory.FindByProductID(ctx, li.ProductID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load inventory for decrement",
			slog.String("bill_id", billID.String()),
			slog.String("product_id", li.ProductID.String()),
			"err", err)
		return
	}
	if record == nil {
		s.logger.WarnContext(ctx, "no inventory record for sold product, skipping decrement",
			slog.String("bill_id", billID.String()),
			slog.String("product_id", li.ProductID.String()))
		return
	}

	record.Stock -= li.Quantity
	if record.Stock < 0 {
		record.Stock = 0
	}
	record.UpdatedAt = time.Now()

	if err := s.inventory.Update(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to decrement inventory",
			slog.String("bill_id", billID.String()),
			slog.String("product_id", li.ProductID.String()),
			"err", err)
	}
}

// invalidateStatistics drops cached sales rollups after a finalize.
func (s *CheckoutService) invalidateStatistics(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "stats:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate statistics cache", "err", err)
	}
}

// loadCatalog joins every product with its inventory record. Products
// without a record are listed with zero stock.
func (s *CheckoutService) loadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
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
		entries[i] = domain.CatalogEntry{
			Product: p,
			Stock:   stockByProduct[p.ID],
		}
	}
	return entries, nil
}

func findLine(lines []domain.LineItem, productID uuid.UUID) (int, domain.LineItem) {
	for i, li := range lines {
		if li.ProductID == productID {
			return i, li
		}
	}
	return -1, domain.LineItem{}
}
