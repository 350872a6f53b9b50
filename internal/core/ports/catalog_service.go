// internal/core/ports/catalog_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// CatalogService is the application port for catalog and stock maintenance.
type CatalogService interface {
	ListEntries(ctx context.Context) ([]domain.CatalogEntry, error)
	Search(ctx context.Context, query string) ([]domain.CatalogEntry, error)
	AddEntry(ctx context.Context, params EntryParams) (*domain.CatalogEntry, error)
	EditEntry(ctx context.Context, productID uuid.UUID, params EntryParams) error
	DeleteEntry(ctx context.Context, productID uuid.UUID) error
}

// EntryParams carries the editable fields of a catalog entry.
type EntryParams struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}
