// internal/core/ports/billing_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// BillingService is the application port for the sales history views. It
// returns fully joined entries; products and clients deleted since the sale
// show up as nil on the entry and callers render the absence explicitly.
type BillingService interface {
	ListHistory(ctx context.Context, filter BillFilter) ([]domain.BillEntry, error)
	GetBill(ctx context.Context, billID uuid.UUID) (*domain.BillEntry, error)
}
