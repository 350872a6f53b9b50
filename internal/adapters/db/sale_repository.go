// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sales")),
	}
}

func (r *saleRepository) ListByBillID(ctx context.Context, billID uuid.UUID) ([]domain.Sale, error) {
	query := `
		SELECT id, bill_id, product_id, quantity, unit_price
		FROM sales
		WHERE bill_id = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// ListSince returns the sale lines of every bill issued at or after the
// given time. A zero time returns the full history.
func (r *saleRepository) ListSince(ctx context.Context, since time.Time) ([]domain.Sale, error) {
	query := `
		SELECT s.id, s.bill_id, s.product_id, s.quantity, s.unit_price
		FROM sales s
		JOIN bills b ON b.id = s.bill_id
		WHERE b.issued_at >= $1
		ORDER BY b.issued_at ASC`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	return scanSales(rows)
}

// InsertBatch writes all sale lines in one transaction so a bill's lines
// land together or not at all.
func (r *saleRepository) InsertBatch(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		query := `
			INSERT INTO sales (id, bill_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`

		for _, s := range sales {
			batch.Queue(query, s.ID, s.BillID, s.ProductID, s.Quantity, s.UnitPrice)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range sales {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert sale: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "sale lines inserted",
		slog.String("bill_id", sales[0].BillID.String()),
		slog.Int("count", len(sales)))
	return nil
}

func scanSales(rows pgx.Rows) ([]domain.Sale, error) {
	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.BillID, &s.ProductID, &s.Quantity, &s.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}
	return sales, nil
}
