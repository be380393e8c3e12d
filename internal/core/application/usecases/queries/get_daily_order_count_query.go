package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrGetDailyOrderCountQueryIsNotConstructed = errors.New(
		"GetDailyOrderCountQuery must be created via NewGetDailyOrderCountQuery constructor",
	)
)

// GetDailyOrderCountQuery counts the orders created since local midnight of
// the current day, server-clock relative.
type GetDailyOrderCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDailyOrderCountQuery creates a query for today's order count.
// This is a parameterless query.
func NewGetDailyOrderCountQuery() GetDailyOrderCountQuery {
	return GetDailyOrderCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDailyOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyOrderCountQueryIsNotConstructed)
}

// DailyOrderCount reports how many orders were created on the given date.
type DailyOrderCount struct {
	Date       string `json:"date"`
	OrderCount int64  `json:"orderCount"`
}
