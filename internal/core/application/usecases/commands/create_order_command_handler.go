package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the order and its items in one transaction, then triggers
// inventory reservation and payment processing as best-effort calls that run
// after commit and can never fail the creation.
type CreateOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	paymentClient   ports.PaymentClient
	inventoryClient ports.InventoryClient
	logger          *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	paymentClient ports.PaymentClient,
	inventoryClient ports.InventoryClient,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		paymentClient:   paymentClient,
		inventoryClient: inventoryClient,
		logger:          logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command.
// Generates a unique order number, builds the aggregate in its initial
// lifecycle state, and persists it with its items as one unit. External
// service calls are fired in a separate goroutine once the transaction
// commits; their failures are logged and swallowed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		order.NewOrderNumber(),
		cmd.CustomerID(),
		cmd.MerchantID(),
		cmd.PaymentMethod(),
		cmd.DeliveryAddress(),
		cmd.SpecialInstructions(),
		cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Order created",
		"order", newOrder.Number(),
		"customer", newOrder.CustomerID(),
		"merchant", newOrder.MerchantID(),
		"total", newOrder.TotalAmount())

	go h.triggerExternalServices(newOrder)

	return newOrder, nil
}

// triggerExternalServices runs the best-effort inventory reservation and
// payment processing for a freshly created order. It carries its own
// background context so the calls outlive the originating request; each
// client bounds its own wait. Results are only logged.
func (h *CreateOrderCommandHandler) triggerExternalServices(o *order.Order) {
	ctx := context.Background()

	items := make([]ports.InventoryItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ports.InventoryItem{
			MenuItemID: item.MenuItemID(),
			Quantity:   item.Quantity(),
		})
	}

	reservation := h.inventoryClient.ReserveInventory(ctx, ports.InventoryRequest{
		MerchantID: o.MerchantID(),
		Items:      items,
	})
	if !reservation.Success {
		h.logger.WarnContext(ctx, "Inventory reservation failed",
			"order", o.Number(),
			"merchant", o.MerchantID(),
			"unavailable_items", reservation.UnavailableItems)
	}

	payment := h.paymentClient.ProcessPayment(ctx, ports.PaymentRequest{
		OrderNumber:   o.Number(),
		Amount:        o.TotalAmount(),
		PaymentMethod: o.PaymentMethod(),
		CustomerID:    o.CustomerID(),
	})
	if payment.Status == order.PaymentFailed {
		h.logger.WarnContext(ctx, "Payment processing failed",
			"order", o.Number(),
			"message", payment.Message)
		return
	}

	h.logger.InfoContext(ctx, "Payment processed",
		"order", o.Number(),
		"transaction", payment.TransactionID,
		"status", payment.Status)
}
