// internal/adapters/db/client_repository.go
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

// clientRepository implements ports.ClientRepository
type clientRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *Database, logger *slog.Logger) ports.ClientRepository {
	return &clientRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "clients")),
	}
}

func (r *clientRepository) ListAll(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM clients
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, name, phone, email, created_at, updated_at
		FROM clients
		WHERE id = $1`

	var c domain.Client
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return &c, nil
}

func (r *clientRepository) Insert(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		client.ID, client.Name, client.Phone, client.Email, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}

	r.logger.DebugContext(ctx, "client inserted",
		slog.String("id", client.ID.String()),
		slog.String("name", client.Name))
	return nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		client.ID, client.Name, client.Phone, client.Email, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.logger.DebugContext(ctx, "client deleted", slog.String("id", id.String()))
	return nil
}
