// internal/core/domain/statistics.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyTotal is the summed bill amount for one calendar day.
type DailyTotal struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyTotal is the summed bill amount for one calendar month.
type MonthlyTotal struct {
	Year   int             `json:"year"`
	Month  time.Month      `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductSales ranks a product by units sold and the revenue those units
// brought in. Name is empty when the product was deleted after the sales.
type ProductSales struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// WeekStart returns the Monday 00:00 of the week containing t, in t's
// location. Weeks anchor on Monday, not the locale's first weekday.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}
