package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MaxDeliveryAddressLength bounds the delivery address field.
	MaxDeliveryAddressLength = 500

	// MaxSpecialInstructionsLength bounds the optional special instructions field.
	MaxSpecialInstructionsLength = 1000

	// MinItems and MaxItems bound the number of line items per order.
	MinItems = 1
	MaxItems = 50
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order is the aggregate root of the order management domain. It owns its
// line items and manages the order lifecycle from creation through the
// delivery workflow to a terminal state.
//
// Invariants:
//   - the order number is assigned once at creation and never changes
//   - total amount equals the sum of item total prices at creation time and
//     is never recomputed afterwards
//   - items and monetary values are immutable after creation; only status
//     and payment status may change
//   - status transitions follow the Status state machine
//   - updatedAt is refreshed on every successful status or payment-status
//     mutation; createdAt is immutable
type Order struct {
	// id is the internal persistence identifier, zero until first persisted.
	id int64

	// number is the externally visible unique order identifier.
	number string

	customerID          int64
	merchantID          int64
	totalAmount         decimal.Decimal
	paymentMethod       PaymentMethod
	paymentStatus       PaymentStatus
	status              Status
	deliveryAddress     string
	specialInstructions string
	createdAt           time.Time
	updatedAt           time.Time

	// items is the ordered collection of line items, insertion order preserved.
	items []Item

	isConstructed bool
}

// NewOrder creates a new Order in the initial lifecycle state
// (WaitingForConfirmation, payment PENDING) with the total amount computed
// as the exact decimal sum of the item total prices.
//
// The order number must come from NewOrderNumber (or an equivalent unique
// source); it is validated for presence only.
func NewOrder(
	number string,
	customerID int64,
	merchantID int64,
	paymentMethod PaymentMethod,
	deliveryAddress string,
	specialInstructions string,
	items []Item,
) (*Order, error) {
	now := time.Now()
	o := &Order{
		status:        WaitingForConfirmation,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setMerchantID(merchantID),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryAddress(deliveryAddress),
		o.setSpecialInstructions(specialInstructions),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	o.totalAmount = total

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields, including
// the stored total amount, lifecycle state, and timestamps, are taken as-is
// after validation.
func RestoreOrder(
	id int64,
	number string,
	customerID int64,
	merchantID int64,
	totalAmount decimal.Decimal,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	deliveryAddress string,
	specialInstructions string,
	createdAt time.Time,
	updatedAt time.Time,
	items []Item,
) (*Order, error) {
	o, err := NewOrder(number, customerID, merchantID, paymentMethod, deliveryAddress, specialInstructions, items)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}
	if createdAt.IsZero() || updatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamps")
	}

	o.id = id
	o.totalAmount = totalAmount
	o.paymentStatus = paymentStatus
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when receiving orders from external layers.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// ID returns the internal persistence identifier, zero before first persist.
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the persistence identifier after the first insert.
// Returns ErrOrderIDAlreadyAssigned if the order already carries one.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// Number returns the externally visible unique order identifier.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// MerchantID returns the merchant's identifier.
func (o *Order) MerchantID() int64 {
	return o.merchantID
}

// TotalAmount returns the immutable order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// PaymentMethod returns the payment method chosen at creation.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment lifecycle state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current order lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the optional special instructions, empty when absent.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the line items in insertion order. The returned slice is a
// copy; the aggregate's items cannot be mutated through it.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// UpdateStatus transitions the order to newStatus, enforcing the state
// machine, and refreshes updatedAt.
//
// Returns *InvalidTransitionError when the state machine rejects the move,
// including self-transitions and any transition out of a terminal state.
func (o *Order) UpdateStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now()
	return nil
}

// UpdatePaymentStatus moves the payment lifecycle to newStatus and refreshes
// updatedAt. The payment lifecycle is independent from the order status.
func (o *Order) UpdatePaymentStatus(newStatus PaymentStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("merchantId",
			fmt.Errorf("%d is not greater than 0", merchantID))
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(deliveryAddress) > MaxDeliveryAddressLength {
		return errs.NewValueIsOutOfRangeError("deliveryAddress length",
			len(deliveryAddress), 1, MaxDeliveryAddressLength)
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setSpecialInstructions(specialInstructions string) error {
	if len(specialInstructions) > MaxSpecialInstructionsLength {
		return errs.NewValueIsOutOfRangeError("specialInstructions length",
			len(specialInstructions), 0, MaxSpecialInstructionsLength)
	}
	o.specialInstructions = specialInstructions
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) < MinItems || len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("items count", len(items), MinItems, MaxItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
