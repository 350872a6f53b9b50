// internal/core/services/clients.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
	"github.com/twinkerhq/pos-be/internal/core/ports"
)

// ClientService maintains the client book. Deleting a client leaves their
// bills in place; history views render those bills as anonymous.
type ClientService struct {
	clients ports.ClientRepository
	logger  *slog.Logger
}

// Statically assert that *ClientService implements the ClientService interface.
var _ ports.ClientService = (*ClientService)(nil)

// NewClientService creates a new client service
func NewClientService(clients ports.ClientRepository, logger *slog.Logger) *ClientService {
	return &ClientService{
		clients: clients,
		logger:  logger.With(slog.String("service", "clients")),
	}
}

// ListClients returns every client in the book.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// GetClient returns one client, or (nil, nil) when absent.
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	return client, nil
}

// AddClient creates a client record.
func (s *ClientService) AddClient(ctx context.Context, params ports.ClientParams) (*domain.Client, error) {
	client := &domain.Client{
		Name:  strings.TrimSpace(params.Name),
		Phone: strings.TrimSpace(params.Phone),
		Email: strings.TrimSpace(params.Email),
	}
	if err := client.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	client.PrepareForStorage()

	if err := s.clients.Insert(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	s.logger.InfoContext(ctx, "client added",
		slog.String("client_id", client.ID.String()),
		slog.String("name", client.Name))
	return client, nil
}

// EditClient updates a client's fields.
func (s *ClientService) EditClient(ctx context.Context, id uuid.UUID, params ports.ClientParams) error {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return domain.ErrNotFound
	}

	client.Name = strings.TrimSpace(params.Name)
	client.Phone = strings.TrimSpace(params.Phone)
	client.Email = strings.TrimSpace(params.Email)
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	client.UpdatedAt = time.Now()

	if err := s.clients.Update(ctx, client); err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// DeleteClient removes a client from the book.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load client: %w", err)
	}
	if client == nil {
		return domain.ErrNotFound
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.logger.InfoContext(ctx, "client deleted",
		slog.String("client_id", id.String()))
	return nil
}
