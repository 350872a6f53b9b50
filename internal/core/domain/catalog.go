// internal/core/domain/catalog.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Descriptive fields only; the stock
// level lives on the InventoryRecord keyed by product id.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// PrepareForStorage assigns the id and timestamps before the first insert
func (p *Product) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// InventoryRecord tracks the stock count for one product. There is exactly
// one record per product id; the engine only reads it and requests
// decrements at finalize time.
type InventoryRecord struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Stock     int       `json:"stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the inventory record
func (r *InventoryRecord) Validate() error {
	if r.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if r.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return nil
}

// CatalogEntry is the read-only (product, stock) pair the reconciler
// consumes: a product joined with its current warehouse stock.
type CatalogEntry struct {
	Product Product `json:"product"`
	Stock   int     `json:"stock"`
}
