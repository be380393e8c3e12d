package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// statusUpdateNotificationType tags customer notifications sent for lifecycle changes.
const statusUpdateNotificationType = "ORDER_STATUS_UPDATE"

// StatusTransitionResult reports the outcome of a successful status change.
type StatusTransitionResult struct {
	OrderNumber    string
	PreviousStatus order.Status
	NewStatus      order.Status
	UpdatedAt      time.Time
	Success        bool
	Message        string
}

// UpdateOrderStatusCommandHandler applies lifecycle transitions to orders.
// The aggregate enforces the state machine; the handler owns the transaction
// and the best-effort customer notification fired after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory         OrderUoWFactory
	notificationClient ports.NotificationClient
	logger             *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notificationClient ports.NotificationClient,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:         uowFactory,
		notificationClient: notificationClient,
		logger:             logger.With("component", "update_order_status_handler"),
	}
}

// Handle processes the status update command.
// Loads the order inside a transaction, applies the transition through the
// aggregate (which rejects any move the state machine forbids), and persists
// the change. On success the customer is notified asynchronously; a failed
// notification never rolls the transition back.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (StatusTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return StatusTransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StatusTransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return StatusTransitionResult{}, err
	}

	previousStatus := o.Status()
	if err = o.UpdateStatus(cmd.NewStatus()); err != nil {
		return StatusTransitionResult{}, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return StatusTransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StatusTransitionResult{}, err
	}

	h.logger.InfoContext(ctx, "Order status updated",
		"order", o.Number(),
		"from", previousStatus,
		"to", o.Status(),
		"reason", cmd.Reason())

	go h.notifyCustomer(o)

	return StatusTransitionResult{
		OrderNumber:    o.Number(),
		PreviousStatus: previousStatus,
		NewStatus:      o.Status(),
		UpdatedAt:      o.UpdatedAt(),
		Success:        true,
		Message:        "Order status updated successfully",
	}, nil
}

// notifyCustomer sends the best-effort status notification on a background
// context so it outlives the originating request. The client logs failures
// and never returns them.
func (h *UpdateOrderStatusCommandHandler) notifyCustomer(o *order.Order) {
	h.notificationClient.SendNotification(context.Background(), ports.Notification{
		CustomerID:       o.CustomerID(),
		OrderNumber:      o.Number(),
		Message:          fmt.Sprintf("Your order status has been updated to: %s", o.Status().DisplayName()),
		NotificationType: statusUpdateNotificationType,
	})
}
