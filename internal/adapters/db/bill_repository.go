// internal/adapters/db/bill_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// billRepository implements ports.BillRepository
type billRepository struct {
	db     *Database
	sb     squirrel.StatementBuilderType
	logger *slog.Logger
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *Database, logger *slog.Logger) ports.BillRepository {
	return &billRepository{
		db:     db,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: logger.With(slog.String("repository", "bills")),
	}
}

func (r *billRepository) ListAll(ctx context.Context) ([]domain.Bill, error) {
	return r.List(ctx, ports.BillFilter{})
}

func (r *billRepository) ListSince(ctx context.Context, since time.Time) ([]domain.Bill, error) {
	return r.List(ctx, ports.BillFilter{From: &since})
}

// List returns bills matching the filter, newest first.
func (r *billRepository) List(ctx context.Context, filter ports.BillFilter) ([]domain.Bill, error) {
	builder := r.sb.
		Select("id", "client_id", "issued_at", "amount", "created_at").
		From("bills").
		OrderBy("issued_at DESC")

	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.ProductID != nil {
		builder = builder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM sales WHERE sales.bill_id = bills.id AND sales.product_id = ?)",
			*filter.ProductID))
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"issued_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"issued_at": *filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bill query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []domain.Bill
	for rows.Next() {
		var b domain.Bill
		if err := rows.Scan(&b.ID, &b.ClientID, &b.IssuedAt, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	query := `
		SELECT id, client_id, issued_at, amount, created_at
		FROM bills
		WHERE id = $1`

	var b domain.Bill
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.ClientID, &b.IssuedAt, &b.Amount, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}

	return &b, nil
}

func (r *billRepository) Insert(ctx context.Context, bill *domain.Bill) error {
	query := `
		INSERT INTO bills (id, client_id, issued_at, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, bill.ID, bill.ClientID, bill.IssuedAt, bill.Amount, bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	r.logger.DebugContext(ctx, "bill inserted",
		slog.String("id", bill.ID.String()),
		slog.String("amount", bill.Amount.String()))
	return nil
}
