package queries

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// normalizePage validates zero-based page and page size, substituting the
// default size when size is zero.
func normalizePage(page, size int) (int, int, error) {
	if page < 0 {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page))
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 1 || size > MaxPageSize {
		return 0, 0, errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	return page, size, nil
}

// GetOrdersByCustomerQuery retrieves a customer's orders, newest first,
// one page at a time.
type GetOrdersByCustomerQuery struct {
	customerID int64
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a paginated customer listing query.
// Page is zero-based; size zero selects the default of 20, capped at 100.
func NewGetOrdersByCustomerQuery(customerID int64, page, size int) (GetOrdersByCustomerQuery, error) {
	if customerID <= 0 {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", customerID))
	}

	page, size, err := normalizePage(page, size)
	if err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetOrdersByCustomerQuery) CustomerID() int64 {
	return q.customerID
}

// Page returns the zero-based page index.
func (q GetOrdersByCustomerQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersByCustomerQuery) Size() int {
	return q.size
}
