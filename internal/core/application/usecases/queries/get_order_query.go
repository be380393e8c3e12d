package queries

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order, including its line items, by the
// externally visible order number.
type GetOrderQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for an exact order number lookup.
func NewGetOrderQuery(orderNumber string) (GetOrderQuery, error) {
	if orderNumber == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return GetOrderQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNumber returns the order number to look up.
func (q GetOrderQuery) OrderNumber() string {
	return q.orderNumber
}
