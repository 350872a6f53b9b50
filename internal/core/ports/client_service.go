// internal/core/ports/client_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/twinkerhq/pos-be/internal/core/domain"
)

// ClientService is the application port for client book maintenance.
type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	AddClient(ctx context.Context, params ClientParams) (*domain.Client, error)
	EditClient(ctx context.Context, id uuid.UUID, params ClientParams) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

// ClientParams carries the editable fields of a client record.
type ClientParams struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
