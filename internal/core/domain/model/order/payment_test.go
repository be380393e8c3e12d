package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Run("should parse every wire name", func(t *testing.T) {
		expected := map[string]order.PaymentMethod{
			"CREDIT_CARD":    order.CreditCard,
			"DEBIT_CARD":     order.DebitCard,
			"CASH":           order.Cash,
			"MOBILE_PAYMENT": order.MobilePayment,
		}

		for name, method := range expected {
			parsed, err := order.PaymentMethodFromName(name)
			require.NoError(t, err)
			assert.Equal(t, method, parsed)
			assert.Equal(t, name, parsed.String())
			require.NoError(t, parsed.Validate())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "BARTER", "credit_card"} {
			_, err := order.PaymentMethodFromName(name)
			require.Error(t, err, "name %q must be rejected", name)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var method order.PaymentMethod
		require.Error(t, method.Validate())
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should parse every wire name", func(t *testing.T) {
		expected := map[string]order.PaymentStatus{
			"PENDING":   order.PaymentPending,
			"COMPLETED": order.PaymentCompleted,
			"FAILED":    order.PaymentFailed,
			"REFUNDED":  order.PaymentRefunded,
		}

		for name, status := range expected {
			parsed, err := order.PaymentStatusFromName(name)
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
			assert.Equal(t, name, parsed.String())
			require.NoError(t, parsed.Validate())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "MAYBE", "pending"} {
			_, err := order.PaymentStatusFromName(name)
			require.Error(t, err, "name %q must be rejected", name)
		}
	})
}
