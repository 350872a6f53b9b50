// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrInvalidSale is returned when a finalize is attempted on an empty cart.
	ErrInvalidSale = errors.New("invalid sale: cart is empty")

	// ErrNotFound is returned when an entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrOutOfStock is returned when an add would claim more units than the
	// warehouse holds after subtracting what the cart already claims.
	ErrOutOfStock = errors.New("product out of stock")
)
