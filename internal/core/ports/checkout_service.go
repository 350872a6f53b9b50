// internal/core/ports/checkout_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// CheckoutService is the application port for cart assembly, catalog
// reconciliation and sale finalization. Carts are scoped to an opaque
// session id; an unknown session starts with an empty cart.
type CheckoutService interface {
	AddToCart(ctx context.Context, sessionID string, productID uuid.UUID) (domain.LineItem, error)
	RemoveLine(sessionID string, productID uuid.UUID)
	RemoveOneUnit(sessionID string, productID uuid.UUID)
	SetClient(ctx context.Context, sessionID string, clientID *uuid.UUID) error
	Cancel(sessionID string)
	CurrentLines(sessionID string) []domain.LineItem
	CurrentTotal(sessionID string) decimal.Decimal
	RefreshCatalog(ctx context.Context, sessionID string) (*ReconcileResult, error)
	FinalizeSale(ctx context.Context, sessionID string) (*domain.Bill, error)
}

// ReconcileResult is what a catalog refresh hands back to the UI: the
// effective sellable stock per product and the cart as it stands after any
// clamping or line removal the refresh forced. Returning the corrected lines
// makes the repair explicit instead of a hidden side effect.
type ReconcileResult struct {
	Entries   []domain.CatalogEntry `json:"entries"`
	Available map[uuid.UUID]int     `json:"available"`
	Lines     []domain.LineItem     `json:"lines"`
	Total     decimal.Decimal       `json:"total"`
}
