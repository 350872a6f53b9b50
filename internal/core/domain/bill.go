// internal/core/domain/bill.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is the durable header of a finalized sale. It is created in memory
// alongside the cart but only written to the store at finalize time; once
// finalized it is immutable history.
type Bill struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  *uuid.UUID      `json:"client_id,omitempty"`
	IssuedAt  time.Time       `json:"issued_at"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Sale is the durable projection of one cart line after finalize: the
// quantity and frozen unit price of one product on one bill.
type Sale struct {
	ID        uuid.UUID       `json:"id"`
	BillID    uuid.UUID       `json:"bill_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity × unit price for this sale line.
func (s Sale) Subtotal() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// SaleLine joins a sale with its product for presentation. Product is nil
// when the product has since been deleted from the catalog; callers render
// the absence explicitly rather than substituting a placeholder.
type SaleLine struct {
	Sale    Sale     `json:"sale"`
	Product *Product `json:"product,omitempty"`
}

// BillEntry is a fully joined bill for the history views: the header, its
// sale lines and the client, if any. Client is nil for anonymous sales and
// for clients deleted after the fact.
type BillEntry struct {
	Bill   Bill       `json:"bill"`
	Lines  []SaleLine `json:"lines"`
	Client *Client    `json:"client,omitempty"`
}
