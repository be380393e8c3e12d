package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByMerchantQueryHandler retrieves a merchant's incoming orders
// page by page from the database.
type GetOrdersByMerchantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByMerchantQueryHandler creates a handler for merchant order listings.
func NewGetOrdersByMerchantQueryHandler(db *gorm.DB) GetOrdersByMerchantQueryHandler {
	return GetOrdersByMerchantQueryHandler{db: db}
}

// Handle executes the listing with the same stable ordering as the customer
// listing: creation time descending, primary key as tiebreaker.
func (h GetOrdersByMerchantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByMerchantQuery,
) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	return listOrdersPage(ctx, h.db, "merchant_id = ?", query.MerchantID(), query.Page(), query.Size())
}
