package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid order number", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery("ORD-1700000000000-AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, "ORD-1700000000000-AB12CD34", query.OrderNumber())
		require.NoError(t, query.Validate())
	})

	t.Run("empty order number", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery("")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByCustomerQuery(t *testing.T) {
	t.Run("valid paging", func(t *testing.T) {
		query, err := queries.NewGetOrdersByCustomerQuery(42, 2, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(42), query.CustomerID())
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, 50, query.Size())
	})

	t.Run("zero size selects the default page size", func(t *testing.T) {
		query, err := queries.NewGetOrdersByCustomerQuery(42, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, query.Page())
		assert.Equal(t, queries.DefaultPageSize, query.Size())
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersByCustomerQuery(42, -1, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("size above the cap is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersByCustomerQuery(42, 0, queries.MaxPageSize+1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("size at the cap is accepted", func(t *testing.T) {
		query, err := queries.NewGetOrdersByCustomerQuery(42, 0, queries.MaxPageSize)
		require.NoError(t, err)
		assert.Equal(t, queries.MaxPageSize, query.Size())
	})

	t.Run("negative size is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersByCustomerQuery(42, 0, -5)
		require.Error(t, err)
	})

	t.Run("non-positive customer id is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersByCustomerQuery(0, 0, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		var query queries.GetOrdersByCustomerQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByCustomerQueryIsNotConstructed)
	})
}

func TestNewGetOrdersByMerchantQuery(t *testing.T) {
	t.Run("valid paging", func(t *testing.T) {
		query, err := queries.NewGetOrdersByMerchantQuery(7, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(7), query.MerchantID())
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 10, query.Size())
	})

	t.Run("non-positive merchant id is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersByMerchantQuery(-3, 0, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		var query queries.GetOrdersByMerchantQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByMerchantQueryIsNotConstructed)
	})
}

func TestNewGetDailyOrderCountQuery(t *testing.T) {
	query := queries.NewGetDailyOrderCountQuery()
	require.NoError(t, query.Validate())

	var notConstructed queries.GetDailyOrderCountQuery
	require.ErrorIs(t, notConstructed.Validate(), queries.ErrGetDailyOrderCountQueryIsNotConstructed)
}
