package queries

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrdersByMerchantQueryIsNotConstructed = errors.New(
		"GetOrdersByMerchantQuery must be created via NewGetOrdersByMerchantQuery constructor",
	)
)

// GetOrdersByMerchantQuery retrieves a merchant's orders, newest first,
// one page at a time.
type GetOrdersByMerchantQuery struct {
	merchantID int64
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewGetOrdersByMerchantQuery creates a paginated merchant listing query.
// Page is zero-based; size zero selects the default of 20, capped at 100.
func NewGetOrdersByMerchantQuery(merchantID int64, page, size int) (GetOrdersByMerchantQuery, error) {
	if merchantID <= 0 {
		return GetOrdersByMerchantQuery{}, errs.NewValueIsInvalidErrorWithCause("merchantId",
			fmt.Errorf("%d is not greater than 0", merchantID))
	}

	page, size, err := normalizePage(page, size)
	if err != nil {
		return GetOrdersByMerchantQuery{}, err
	}

	return GetOrdersByMerchantQuery{
		merchantID: merchantID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByMerchantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByMerchantQueryIsNotConstructed)
}

// MerchantID returns the merchant whose orders are listed.
func (q GetOrdersByMerchantQuery) MerchantID() int64 {
	return q.merchantID
}

// Page returns the zero-based page index.
func (q GetOrdersByMerchantQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersByMerchantQuery) Size() int {
	return q.size
}
