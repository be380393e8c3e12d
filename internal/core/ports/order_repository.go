package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are always written as one unit.
type OrderRepository interface {
	// Add persists a new order aggregate and its items atomically.
	// The order must be valid and its number must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable fields (status, payment status, updatedAt)
	// of an existing order aggregate. Items and monetary totals are immutable
	// and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate, including its items, by the
	// externally visible order number. Returns an ObjectNotFoundError when
	// no order carries the number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)
}
