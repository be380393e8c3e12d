package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCustomerQueryHandler retrieves a customer's order history page
// by page from the database.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order listings.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the listing. Orders are sorted by creation time descending
// with the primary key as tiebreaker, so paging is stable.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	return listOrdersPage(ctx, h.db, "customer_id = ?", query.CustomerID(), query.Page(), query.Size())
}

// listOrdersPage runs a filtered, paginated listing over the orders table
// and assembles the page with its line items and total counts.
func listOrdersPage(
	ctx context.Context,
	db *gorm.DB,
	condition string,
	conditionArg any,
	page, size int,
) (OrdersPage, error) {
	var totalCount int64
	if err := db.WithContext(ctx).
		Table("orders").
		Where(condition, conditionArg).
		Count(&totalCount).Error; err != nil {
		return OrdersPage{}, err
	}

	var rows []orderRow
	err := db.WithContext(ctx).
		Table("orders").
		Where(condition, conditionArg).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(page * size).
		Find(&rows).Error
	if err != nil {
		return OrdersPage{}, err
	}

	orderIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	itemsByOrder, err := loadItemRows(ctx, db, orderIDs)
	if err != nil {
		return OrdersPage{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderResponse(row, itemsByOrder[row.ID]))
	}

	totalPages := int((totalCount + int64(size) - 1) / int64(size))
	return OrdersPage{
		Orders:     orders,
		Page:       page,
		Size:       size,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}
