package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to cancel an order. Cancellation
// is an ordinary lifecycle transition to Cancelled and inherits every state
// machine restriction: a Completed or already-Cancelled order cannot be
// cancelled again.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The reason, if supplied, is carried for logging only.
func NewCancelOrderCommand(orderNumber string, reason string) (CancelOrderCommand, error) {
	// Reuse the status update validation so both commands reject the same inputs.
	inner, err := NewUpdateOrderStatusCommand(orderNumber, order.Cancelled, reason)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderNumber: inner.OrderNumber(),
		reason:      inner.Reason(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderNumber returns the externally visible order identifier.
func (c CancelOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Reason returns the optional cancellation reason, empty when absent.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
