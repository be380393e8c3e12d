package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders by delegating to the status
// update handler with the Cancelled target status, so cancellation follows
// exactly the same transition rules and notification path.
type CancelOrderCommandHandler struct {
	updateStatusHandler UpdateOrderStatusCommandHandler
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(updateStatusHandler UpdateOrderStatusCommandHandler) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		updateStatusHandler: updateStatusHandler,
	}
}

// Handle processes the cancellation command as a transition to Cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (StatusTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return StatusTransitionResult{}, err
	}

	updateCmd, err := NewUpdateOrderStatusCommand(cmd.OrderNumber(), order.Cancelled, cmd.Reason())
	if err != nil {
		return StatusTransitionResult{}, err
	}

	return h.updateStatusHandler.Handle(ctx, updateCmd)
}
