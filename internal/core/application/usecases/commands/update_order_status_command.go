package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// MaxReasonLength bounds the optional audit reason attached to a status change.
const MaxReasonLength = 500

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle state. The optional reason is carried for logging only and is
// never stored.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	newStatus   order.Status
	reason      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates that the order number is present and the target status is a
// valid member of the enum; whether the transition itself is legal is
// decided by the aggregate when the command is handled.
func NewUpdateOrderStatusCommand(orderNumber string, newStatus order.Status, reason string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setNewStatus(newStatus),
		cmd.setReason(reason),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the externally visible order identifier.
func (c UpdateOrderStatusCommand) OrderNumber() string {
	return c.orderNumber
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// Reason returns the optional audit reason, empty when absent.
func (c UpdateOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *UpdateOrderStatusCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setReason(reason string) error {
	if len(reason) > MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason length", len(reason), 0, MaxReasonLength)
	}
	c.reason = reason
	return nil
}
