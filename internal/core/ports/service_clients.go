package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// The gateway ports below cover the three best-effort external
// collaborators. None of them returns an error: a timeout, transport
// failure, or malformed response is converted by the adapter into the
// documented fallback value and logged, so a collaborator outage can never
// fail the order operation that triggered the call.

// PaymentRequest carries the data needed to charge a customer for an order.
type PaymentRequest struct {
	OrderNumber   string
	Amount        decimal.Decimal
	PaymentMethod order.PaymentMethod
	CustomerID    int64
}

// PaymentResult is the payment service's answer, or the synthesized failed
// result when the service could not be reached.
type PaymentResult struct {
	TransactionID string
	Status        order.PaymentStatus
	Message       string
}

// PaymentClient processes payments with a bounded wait.
type PaymentClient interface {
	ProcessPayment(ctx context.Context, request PaymentRequest) PaymentResult
}

// InventoryItem identifies one menu item and the quantity to reserve.
type InventoryItem struct {
	MenuItemID int64
	Quantity   int
}

// InventoryRequest asks a merchant's inventory service to hold stock for an order.
type InventoryRequest struct {
	MerchantID int64
	Items      []InventoryItem
}

// InventoryResult reports the reservation outcome. On any failure Success is
// false and UnavailableItems lists every requested menu item.
type InventoryResult struct {
	Success          bool
	ReservationID    string
	UnavailableItems []int64
}

// InventoryClient reserves inventory with a bounded wait.
type InventoryClient interface {
	ReserveInventory(ctx context.Context, request InventoryRequest) InventoryResult
}

// Notification is a customer-facing message about an order.
type Notification struct {
	CustomerID       int64
	OrderNumber      string
	Message          string
	NotificationType string
}

// NotificationClient delivers customer notifications fire-and-forget;
// failures are logged, never surfaced.
type NotificationClient interface {
	SendNotification(ctx context.Context, notification Notification)
}
