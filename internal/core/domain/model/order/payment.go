package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod is the closed set of ways a customer can pay for an order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	CreditCard
	DebitCard
	Cash
	MobilePayment
)

func getPaymentMethodNames() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CreditCard:    "CREDIT_CARD",
		DebitCard:     "DEBIT_CARD",
		Cash:          "CASH",
		MobilePayment: "MOBILE_PAYMENT",
	}
}

// PaymentMethodFromName parses a wire name (e.g. "CASH") into a PaymentMethod.
func PaymentMethodFromName(name string) (PaymentMethod, error) {
	for method, methodName := range getPaymentMethodNames() {
		if methodName == name {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", name))
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodNames()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method, or "UNKNOWN".
func (m PaymentMethod) String() string {
	if name, ok := getPaymentMethodNames()[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// PaymentStatus tracks the payment lifecycle of an order. It is independent
// from the order Status: a cancelled order may still carry a completed
// payment awaiting refund.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status assigned at order creation.
	PaymentPending

	PaymentCompleted
	PaymentFailed
	PaymentRefunded
)

func getPaymentStatusNames() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:   "PENDING",
		PaymentCompleted: "COMPLETED",
		PaymentFailed:    "FAILED",
		PaymentRefunded:  "REFUNDED",
	}
}

// PaymentStatusFromName parses a wire name (e.g. "PENDING") into a PaymentStatus.
func PaymentStatusFromName(name string) (PaymentStatus, error) {
	for status, statusName := range getPaymentStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", name))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status, or "UNKNOWN".
func (s PaymentStatus) String() string {
	if name, ok := getPaymentStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}
