package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new food delivery order.
// Line items are constructed through order.NewItem before the command is
// built, so every item already satisfies the domain invariants.
//
// Example:
//
//	item, _ := order.NewItem(7, "Pad Thai", 2, decimal.RequireFromString("10.00"), "")
//	cmd, err := NewCreateOrderCommand(42, 7, order.Cash, "12 Sukhumvit Road", "", []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          int64
	merchantID          int64
	paymentMethod       order.PaymentMethod
	deliveryAddress     string
	specialInstructions string
	items               []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, payment method, address bounds, and the 1..50 item
// count. Returns an error if any validation fails.
func NewCreateOrderCommand(
	customerID int64,
	merchantID int64,
	paymentMethod order.PaymentMethod,
	deliveryAddress string,
	specialInstructions string,
	items []order.Item,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setMerchantID(merchantID),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setSpecialInstructions(specialInstructions),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// MerchantID returns the merchant's identifier.
func (c CreateOrderCommand) MerchantID() int64 {
	return c.merchantID
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryAddress returns the delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// SpecialInstructions returns the optional special instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// Items returns the validated line items in insertion order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID int64) error {
	if merchantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("merchantId",
			fmt.Errorf("%d is not greater than 0", merchantID))
	}
	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if len(deliveryAddress) > order.MaxDeliveryAddressLength {
		return errs.NewValueIsOutOfRangeError("deliveryAddress length",
			len(deliveryAddress), 1, order.MaxDeliveryAddressLength)
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setSpecialInstructions(specialInstructions string) error {
	if len(specialInstructions) > order.MaxSpecialInstructionsLength {
		return errs.NewValueIsOutOfRangeError("specialInstructions length",
			len(specialInstructions), 0, order.MaxSpecialInstructionsLength)
	}
	c.specialInstructions = specialInstructions
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) < order.MinItems || len(items) > order.MaxItems {
		return errs.NewValueIsOutOfRangeError("items count", len(items), order.MinItems, order.MaxItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
