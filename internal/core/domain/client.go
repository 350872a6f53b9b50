// internal/core/domain/client.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Client is a customer record. A sale may be anonymous, so most of the
// engine deals in *uuid.UUID client references rather than Client values.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the client
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// PrepareForStorage assigns the id and timestamps before the first insert
func (c *Client) PrepareForStorage() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
