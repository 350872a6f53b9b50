// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

func (r *inventoryRepository) ListAll(ctx context.Context) ([]domain.InventoryRecord, error) {
	query := `
		SELECT id, product_id, stock, updated_at
		FROM inventory
		ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var records []domain.InventoryRecord
	for rows.Next() {
		var rec domain.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Stock, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}

	return records, nil
}

func (r *inventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*domain.InventoryRecord, error) {
	query := `
		SELECT id, product_id, stock, updated_at
		FROM inventory
		WHERE product_id = $1`

	var rec domain.InventoryRecord
	err := r.db.QueryRow(ctx, query, productID).Scan(&rec.ID, &rec.ProductID, &rec.Stock, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find inventory record: %w", err)
	}

	return &rec, nil
}

func (r *inventoryRepository) Insert(ctx context.Context, record *domain.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, stock, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, record.ID, record.ProductID, record.Stock, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory record: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory record inserted",
		slog.String("product_id", record.ProductID.String()),
		slog.Int("stock", record.Stock))
	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, record *domain.InventoryRecord) error {
	query := `
		UPDATE inventory
		SET stock = $2, updated_at = $3
		WHERE product_id = $1`

	tag, err := r.db.Exec(ctx, query, record.ProductID, record.Stock, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *inventoryRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory record deleted",
		slog.String("product_id", productID.String()))
	return nil
}
