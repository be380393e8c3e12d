// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient lookup by order number and listing by customer or merchant.
type OrderDTO struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement"`
	Number              string          `gorm:"size:50;uniqueIndex;not null"`
	CustomerID          int64           `gorm:"index;not null"`
	MerchantID          int64           `gorm:"index;not null"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod       string          `gorm:"size:20;not null"`
	PaymentStatus       string          `gorm:"size:20;not null"`
	Status              string          `gorm:"size:30;index;not null"`
	DeliveryAddress     string          `gorm:"size:500;not null"`
	SpecialInstructions string          `gorm:"size:1000"`
	CreatedAt           time.Time       `gorm:"index;not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
	Items               []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line item row.
// Items are immutable once the order is placed; they are written together
// with the order and never updated afterwards.
type OrderItemDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	OrderID      int64           `gorm:"index;not null"`
	MenuItemID   int64           `gorm:"not null"`
	MenuItemName string          `gorm:"size:200;not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Notes        string          `gorm:"size:500"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// The items slice is populated so GORM persists the full aggregate in one create.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID(),
			MenuItemID:   item.MenuItemID(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			TotalPrice:   item.TotalPrice(),
			Notes:        item.Notes(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		Number:              aggregate.Number(),
		CustomerID:          aggregate.CustomerID(),
		MerchantID:          aggregate.MerchantID(),
		TotalAmount:         aggregate.TotalAmount(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		Status:              aggregate.Status().String(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromName(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromName(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.RestoreItem(
			itemDTO.MenuItemID,
			itemDTO.MenuItemName,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.TotalPrice,
			itemDTO.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Number,
		dto.CustomerID,
		dto.MerchantID,
		dto.TotalAmount,
		paymentMethod,
		paymentStatus,
		status,
		dto.DeliveryAddress,
		dto.SpecialInstructions,
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
	)
}
