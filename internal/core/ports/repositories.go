// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// The persistence ports below are the storage contract the engine consumes:
// list-all, find-by-id, insert and update per entity, plus the domain finders
// the services need. Finders return (nil, nil) when the entity is absent;
// every write returns an error so callers can decide how a partial failure
// is handled.

// ProductRepository defines the persistence port for products.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryRepository defines the persistence port for inventory records.
// Records are keyed 1:1 by product id, not by their own id.
type InventoryRepository interface {
	ListAll(ctx context.Context) ([]domain.InventoryRecord, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error)
	Insert(ctx context.Context, record *domain.InventoryRecord) error
	Update(ctx context.Context, record *domain.InventoryRecord) error
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error
}

// ClientRepository defines the persistence port for client records.
type ClientRepository interface {
	ListAll(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BillRepository defines the persistence port for finalized bill headers.
// Bills are append-only history: there is no update.
type BillRepository interface {
	ListAll(ctx context.Context) ([]domain.Bill, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.Bill, error)
	List(ctx context.Context, filter BillFilter) ([]domain.Bill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	Insert(ctx context.Context, bill *domain.Bill) error
}

// BillFilter narrows a bill history listing. Zero-value fields are ignored;
// a zero Limit means no page cap. ProductID keeps only bills with at least
// one sale line for that product.
type BillFilter struct {
	ClientID  *uuid.UUID
	ProductID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// SaleRepository defines the persistence port for durable sale lines.
type SaleRepository interface {
	ListByBillID(ctx context.Context, billID uuid.UUID) ([]domain.Sale, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.Sale, error)
	InsertBatch(ctx context.Context, sales []domain.Sale) error
}
