// internal/core/domain/cart.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product's entry in a cart. The unit price is captured when
// the line is first added and never re-read from the catalog, so a price edit
// mid-sale cannot silently change what the customer agreed to pay.
type LineItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal returns quantity × unit price for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is the in-memory working set of line items for one not-yet-finalized
// sale. It keeps at most one line per product id, preserves insertion order,
// and maintains a running total incrementally so it never drifts from
// sum(quantity × unit price).
//
// A Cart is owned by exactly one checkout session and is not safe for
// concurrent use; callers that share sessions must serialize access.
type Cart struct {
	lines []*LineItem
	total decimal.Decimal
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{total: decimal.Zero}
}

func (c *Cart) find(productID uuid.UUID) (int, *LineItem) {
	for i, li := range c.lines {
		if li.ProductID == productID {
			return i, li
		}
	}
	return -1, nil
}

// AddProduct adds one unit of the product to the cart. Repeated adds of the
// same product aggregate into a single line. Stock bounds are not checked
// here; callers reconcile against the catalog before offering the add.
func (c *Cart) AddProduct(p Product) {
	if _, li := c.find(p.ID); li != nil {
		li.Quantity++
	} else {
		c.lines = append(c.lines, &LineItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    1,
		})
	}
	c.total = c.total.Add(p.Price)
}

// RemoveLine deletes the product's line entirely, regardless of quantity.
// Removing an absent product is a no-op.
func (c *Cart) RemoveLine(productID uuid.UUID) {
	i, li := c.find(productID)
	if li == nil {
		return
	}
	c.total = c.total.Sub(li.Subtotal())
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// RemoveOneUnit decrements the product's line by one unit. A line never
// survives at quantity zero: decrementing a quantity-1 line deletes it.
func (c *Cart) RemoveOneUnit(productID uuid.UUID) {
	i, li := c.find(productID)
	if li == nil || li.Quantity < 1 {
		return
	}
	li.Quantity--
	c.total = c.total.Sub(li.UnitPrice)
	if li.Quantity == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// QuantityOf returns the quantity held for the product, or 0 if absent.
func (c *Cart) QuantityOf(productID uuid.UUID) int {
	if _, li := c.find(productID); li != nil {
		return li.Quantity
	}
	return 0
}

// Lines returns a snapshot of the current lines in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	for i, li := range c.lines {
		out[i] = *li
	}
	return out
}

// Total returns the running total.
func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear discards all lines and resets the total. Used on cancel and after a
// successful finalize.
func (c *Cart) Clear() {
	c.lines = nil
	c.total = decimal.Zero
}

// EffectiveStock returns the stock still sellable for the entry's product
// after subtracting what the cart already claims, floored at zero. Pure: the
// cart is not modified.
func EffectiveStock(c *Cart, e CatalogEntry) int {
	effective := e.Stock - c.QuantityOf(e.Product.ID)
	if effective < 0 {
		return 0
	}
	return effective
}

// ClampToStock repairs the cart line for the entry's product so that the
// cart never claims more than the warehouse holds:
//
//   - zero warehouse stock deletes the line outright, whatever its quantity;
//   - a claim above the available stock is clamped down to it, keeping the
//     unit price the line was added with.
//
// Returns true if the cart was modified.
func (c *Cart) ClampToStock(e CatalogEntry) bool {
	_, li := c.find(e.Product.ID)
	if li == nil {
		return false
	}
	if e.Stock == 0 {
		c.RemoveLine(e.Product.ID)
		return true
	}
	if li.Quantity <= e.Stock {
		return false
	}
	removed := li.Quantity - e.Stock
	li.Quantity = e.Stock
	c.total = c.total.Sub(li.UnitPrice.Mul(decimal.NewFromInt(int64(removed))))
	return true
}
