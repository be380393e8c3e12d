// Package http implements the inbound REST adapter on top of echo.
// It translates HTTP requests into commands and queries, and domain errors
// into the service's standard error body.
package http

import (
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the payload for POST /api/orders.
type CreateOrderRequest struct {
	CustomerID          int64                    `json:"customerId"`
	MerchantID          int64                    `json:"merchantId"`
	PaymentMethod       string                   `json:"paymentMethod"`
	DeliveryAddress     string                   `json:"deliveryAddress"`
	SpecialInstructions string                   `json:"specialInstructions"`
	Items               []CreateOrderItemRequest `json:"items"`
}

// CreateOrderItemRequest is one line item within a create order payload.
type CreateOrderItemRequest struct {
	MenuItemID   int64           `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Notes        string          `json:"notes"`
}

// fieldErrors reports per-field problems before the command layer is reached,
// mirroring the granularity clients expect from a validation failure.
func (r CreateOrderRequest) fieldErrors() map[string]string {
	errors := make(map[string]string)

	if r.CustomerID <= 0 {
		errors["customerId"] = "Customer ID must be positive"
	}
	if r.MerchantID <= 0 {
		errors["merchantId"] = "Merchant ID must be positive"
	}
	if r.PaymentMethod == "" {
		errors["paymentMethod"] = "Payment method is required"
	} else if _, err := order.PaymentMethodFromName(r.PaymentMethod); err != nil {
		errors["paymentMethod"] = "Payment method is invalid"
	}
	if r.DeliveryAddress == "" {
		errors["deliveryAddress"] = "Delivery address is required"
	} else if len(r.DeliveryAddress) > order.MaxDeliveryAddressLength {
		errors["deliveryAddress"] = "Delivery address must not exceed 500 characters"
	}
	if len(r.SpecialInstructions) > order.MaxSpecialInstructionsLength {
		errors["specialInstructions"] = "Special instructions must not exceed 1000 characters"
	}
	if len(r.Items) == 0 {
		errors["items"] = "Order items are required"
	} else if len(r.Items) > order.MaxItems {
		errors["items"] = "Order must not exceed 50 items"
	}

	for i, item := range r.Items {
		item.collectFieldErrors(i, errors)
	}

	return errors
}

func (r CreateOrderItemRequest) collectFieldErrors(index int, errors map[string]string) {
	prefix := "items[" + strconv.Itoa(index) + "]."

	if r.MenuItemID <= 0 {
		errors[prefix+"menuItemId"] = "Menu item ID must be positive"
	}
	if r.MenuItemName == "" {
		errors[prefix+"menuItemName"] = "Menu item name is required"
	} else if len(r.MenuItemName) > order.MaxMenuItemNameLength {
		errors[prefix+"menuItemName"] = "Menu item name must not exceed 200 characters"
	}
	if r.Quantity <= 0 {
		errors[prefix+"quantity"] = "Quantity must be positive"
	}
	if !r.UnitPrice.IsPositive() {
		errors[prefix+"unitPrice"] = "Unit price must be positive"
	}
	if len(r.Notes) > order.MaxItemNotesLength {
		errors[prefix+"notes"] = "Notes must not exceed 500 characters"
	}
}

// toCommand converts the validated request into a CreateOrderCommand.
func (r CreateOrderRequest) toCommand() (commands.CreateOrderCommand, error) {
	paymentMethod, err := order.PaymentMethodFromName(r.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(r.Items))
	for _, itemRequest := range r.Items {
		item, itemErr := order.NewItem(
			itemRequest.MenuItemID,
			itemRequest.MenuItemName,
			itemRequest.Quantity,
			itemRequest.UnitPrice,
			itemRequest.Notes,
		)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewCreateOrderCommand(
		r.CustomerID,
		r.MerchantID,
		paymentMethod,
		r.DeliveryAddress,
		r.SpecialInstructions,
		items,
	)
}

// UpdateOrderStatusRequest is the payload for PUT /api/orders/:orderNumber/status.
type UpdateOrderStatusRequest struct {
	NewStatus string `json:"newStatus"`
	Reason    string `json:"reason"`
}

func (r UpdateOrderStatusRequest) fieldErrors() map[string]string {
	errors := make(map[string]string)

	if r.NewStatus == "" {
		errors["newStatus"] = "New status is required"
	} else if _, err := order.StatusFromName(r.NewStatus); err != nil {
		errors["newStatus"] = "New status is invalid"
	}
	if len(r.Reason) > commands.MaxReasonLength {
		errors["reason"] = "Reason must not exceed 500 characters"
	}

	return errors
}

// StatusUpdateResponse is returned by status update and cancel endpoints.
type StatusUpdateResponse struct {
	OrderNumber    string    `json:"orderNumber"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
}

func toStatusUpdateResponse(result commands.StatusTransitionResult) StatusUpdateResponse {
	return StatusUpdateResponse{
		OrderNumber:    result.OrderNumber,
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      result.NewStatus.String(),
		UpdatedAt:      result.UpdatedAt,
		Success:        result.Success,
		Message:        result.Message,
	}
}

// toOrderResponse maps a freshly created aggregate onto the read model shape,
// so the create endpoint answers with the same representation the queries use.
// Line items have no row ids yet; the id field is omitted until the order is
// read back through a query.
func toOrderResponse(o *order.Order) queries.OrderResponse {
	domainItems := o.Items()
	items := make([]queries.OrderItemResponse, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, queries.OrderItemResponse{
			MenuItemID:   item.MenuItemID(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			TotalPrice:   item.TotalPrice(),
			Notes:        item.Notes(),
		})
	}

	return queries.OrderResponse{
		ID:                  o.ID(),
		OrderNumber:         o.Number(),
		CustomerID:          o.CustomerID(),
		MerchantID:          o.MerchantID(),
		TotalAmount:         o.TotalAmount(),
		PaymentMethod:       o.PaymentMethod().String(),
		PaymentStatus:       o.PaymentStatus().String(),
		Status:              o.Status().String(),
		DeliveryAddress:     o.DeliveryAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		Items:               items,
	}
}
