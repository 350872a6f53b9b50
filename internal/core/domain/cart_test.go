// internal/core/domain/cart_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

func product(name string, price string) domain.Product {
	return domain.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestCart_AddProduct_AggregatesLines(t *testing.T) {
	cart := domain.NewCart()
	espresso := product("Espresso", "1.80")
	croissant := product("Croissant", "1.50")

	cart.AddProduct(espresso)
	cart.AddProduct(croissant)
	cart.AddProduct(espresso)
	cart.AddProduct(espresso)

	lines := cart.Lines()
	require.Len(t, lines, 2)

	// Insertion order is preserved and repeats fold into one line.
	assert.Equal(t, espresso.ID, lines[0].ProductID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, croissant.ID, lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("6.90")),
		"expected 6.90, got %s", cart.Total())
}

func TestCart_UnitPriceFrozenAtFirstAdd(t *testing.T) {
	cart := domain.NewCart()
	p := product("Espresso", "1.80")

	cart.AddProduct(p)

	// A catalog price edit mid-sale must not change the line.
	p.Price = decimal.RequireFromString("2.50")
	cart.AddProduct(p)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("1.80")))
}

func TestCart_RemoveLine(t *testing.T) {
	cart := domain.NewCart()
	espresso := product("Espresso", "1.80")
	croissant := product("Croissant", "1.50")

	cart.AddProduct(espresso)
	cart.AddProduct(espresso)
	cart.AddProduct(croissant)

	cart.RemoveLine(espresso.ID)

	require.Len(t, cart.Lines(), 1)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("1.50")))

	// Removing an absent product is a no-op.
	cart.RemoveLine(uuid.New())
	assert.Len(t, cart.Lines(), 1)
}

func TestCart_RemoveOneUnit(t *testing.T) {
	cart := domain.NewCart()
	espresso := product("Espresso", "1.80")

	cart.AddProduct(espresso)
	cart.AddProduct(espresso)

	cart.RemoveOneUnit(espresso.ID)
	assert.Equal(t, 1, cart.QuantityOf(espresso.ID))
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("1.80")))

	// A quantity-1 line disappears instead of surviving at zero.
	cart.RemoveOneUnit(espresso.ID)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_Clear(t *testing.T) {
	cart := domain.NewCart()
	cart.AddProduct(product("Espresso", "1.80"))
	cart.AddProduct(product("Croissant", "1.50"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestEffectiveStock(t *testing.T) {
	espresso := product("Espresso", "1.80")

	tests := []struct {
		name     string
		stock    int
		inCart   int
		expected int
	}{
		{"nothing_in_cart", 10, 0, 10},
		{"partially_claimed", 10, 4, 6},
		{"fully_claimed", 3, 3, 0},
		{"overclaimed_floors_at_zero", 2, 5, 0},
		{"zero_stock", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart()
			for i := 0; i < tt.inCart; i++ {
				cart.AddProduct(espresso)
			}

			entry := domain.CatalogEntry{Product: espresso, Stock: tt.stock}
			assert.Equal(t, tt.expected, domain.EffectiveStock(cart, entry))

			// EffectiveStock never mutates the cart.
			assert.Equal(t, tt.inCart, cart.QuantityOf(espresso.ID))
		})
	}
}

func TestCart_ClampToStock(t *testing.T) {
	espresso := product("Espresso", "1.80")

	t.Run("zero_stock_removes_line", func(t *testing.T) {
		cart := domain.NewCart()
		cart.AddProduct(espresso)
		cart.AddProduct(espresso)

		modified := cart.ClampToStock(domain.CatalogEntry{Product: espresso, Stock: 0})

		assert.True(t, modified)
		assert.True(t, cart.IsEmpty())
		assert.True(t, cart.Total().IsZero())
	})

	t.Run("overclaim_clamps_to_stock", func(t *testing.T) {
		cart := domain.NewCart()
		for i := 0; i < 5; i++ {
			cart.AddProduct(espresso)
		}

		modified := cart.ClampToStock(domain.CatalogEntry{Product: espresso, Stock: 2})

		assert.True(t, modified)
		assert.Equal(t, 2, cart.QuantityOf(espresso.ID))
		assert.True(t, cart.Total().Equal(decimal.RequireFromString("3.60")))
	})

	t.Run("claim_within_stock_untouched", func(t *testing.T) {
		cart := domain.NewCart()
		cart.AddProduct(espresso)

		modified := cart.ClampToStock(domain.CatalogEntry{Product: espresso, Stock: 10})

		assert.False(t, modified)
		assert.Equal(t, 1, cart.QuantityOf(espresso.ID))
	})

	t.Run("absent_product_untouched", func(t *testing.T) {
		cart := domain.NewCart()
		cart.AddProduct(espresso)

		other := product("Croissant", "1.50")
		modified := cart.ClampToStock(domain.CatalogEntry{Product: other, Stock: 0})

		assert.False(t, modified)
		assert.Equal(t, 1, cart.QuantityOf(espresso.ID))
	})
}

func TestSale_Subtotal(t *testing.T) {
	sale := domain.Sale{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("2.60"),
	}
	assert.True(t, sale.Subtotal().Equal(decimal.RequireFromString("7.80")))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			"wednesday_rewinds_to_monday",
			time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday_is_its_own_start",
			time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday_belongs_to_previous_monday",
			time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.WeekStart(tt.input))
		})
	}
}
