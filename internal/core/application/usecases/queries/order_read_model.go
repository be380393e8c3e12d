// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read the order tables directly through gorm and return
// client-facing read models; they never touch the aggregate.
package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pagination bounds for the listing queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// OrderResponse is the client-facing representation of an order.
type OrderResponse struct {
	ID                  int64               `json:"id"`
	OrderNumber         string              `json:"orderNumber"`
	CustomerID          int64               `json:"customerId"`
	MerchantID          int64               `json:"merchantId"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	PaymentMethod       string              `json:"paymentMethod"`
	PaymentStatus       string              `json:"paymentStatus"`
	Status              string              `json:"status"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	Items               []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the client-facing representation of a line item.
// The row id is known only once the item has been read back from the
// database; responses built from a fresh aggregate omit it.
type OrderItemResponse struct {
	ID           int64           `json:"id,omitempty"`
	MenuItemID   int64           `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Notes        string          `json:"notes,omitempty"`
}

// OrdersPage is one page of a paginated order listing.
type OrdersPage struct {
	Orders     []OrderResponse `json:"orders"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalCount int64           `json:"totalCount"`
	TotalPages int             `json:"totalPages"`
}

// orderRow mirrors the orders table for read queries.
type orderRow struct {
	ID                  int64
	Number              string
	CustomerID          int64
	MerchantID          int64
	TotalAmount         decimal.Decimal
	PaymentMethod       string
	PaymentStatus       string
	Status              string
	DeliveryAddress     string
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// orderItemRow mirrors the order_items table for read queries.
type orderItemRow struct {
	ID           int64
	OrderID      int64
	MenuItemID   int64
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	Notes        string
}

func toOrderResponse(row orderRow, itemRows []orderItemRow) OrderResponse {
	items := make([]OrderItemResponse, 0, len(itemRows))
	for _, itemRow := range itemRows {
		items = append(items, OrderItemResponse{
			ID:           itemRow.ID,
			MenuItemID:   itemRow.MenuItemID,
			MenuItemName: itemRow.MenuItemName,
			Quantity:     itemRow.Quantity,
			UnitPrice:    itemRow.UnitPrice,
			TotalPrice:   itemRow.TotalPrice,
			Notes:        itemRow.Notes,
		})
	}

	return OrderResponse{
		ID:                  row.ID,
		OrderNumber:         row.Number,
		CustomerID:          row.CustomerID,
		MerchantID:          row.MerchantID,
		TotalAmount:         row.TotalAmount,
		PaymentMethod:       row.PaymentMethod,
		PaymentStatus:       row.PaymentStatus,
		Status:              row.Status,
		DeliveryAddress:     row.DeliveryAddress,
		SpecialInstructions: row.SpecialInstructions,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
		Items:               items,
	}
}

// loadItemRows fetches the line items for a set of orders, keyed by order ID,
// preserving insertion order via the item primary key.
func loadItemRows(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]orderItemRow, error) {
	if len(orderIDs) == 0 {
		return map[int64][]orderItemRow{}, nil
	}

	var rows []orderItemRow
	err := db.WithContext(ctx).
		Table("order_items").
		Where("order_id IN ?", orderIDs).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]orderItemRow, len(orderIDs))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}
	return byOrder, nil
}
