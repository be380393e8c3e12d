package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MaxMenuItemNameLength bounds the snapshotted menu item name.
	MaxMenuItemNameLength = 200

	// MaxItemNotesLength bounds the optional free-text note on a line item.
	MaxItemNotesLength = 500
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line item owned by exactly one Order. It snapshots the menu item
// name and unit price at order time; the values never track the live menu.
//
// Invariants:
//   - menu item ID is positive
//   - menu item name is non-empty and bounded
//   - quantity is positive
//   - unit price is strictly positive
//   - total price equals unit price multiplied by quantity, computed with
//     exact decimal arithmetic at construction and never recomputed
type Item struct {
	menuItemID   int64
	menuItemName string
	quantity     int
	unitPrice    decimal.Decimal
	totalPrice   decimal.Decimal
	notes        string

	isConstructed bool
}

// NewItem creates a line item, computing its total price from the unit price
// and quantity. Returns a validation error if any argument is out of bounds.
func NewItem(menuItemID int64, menuItemName string, quantity int, unitPrice decimal.Decimal, notes string) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setMenuItemName(menuItemName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setNotes(notes),
	); err != nil {
		return Item{}, err
	}

	item.totalPrice = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return item, nil
}

// RestoreItem reconstructs a line item from persistence, keeping the stored
// total price instead of recomputing it.
func RestoreItem(
	menuItemID int64,
	menuItemName string,
	quantity int,
	unitPrice decimal.Decimal,
	totalPrice decimal.Decimal,
	notes string,
) (Item, error) {
	item, err := NewItem(menuItemID, menuItemName, quantity, unitPrice, notes)
	if err != nil {
		return Item{}, err
	}

	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the Item was created through a factory function.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the ordered menu item.
func (i Item) MenuItemID() int64 {
	return i.menuItemID
}

// MenuItemName returns the menu item name snapshotted at order time.
func (i Item) MenuItemName() string {
	return i.menuItemName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns unit price multiplied by quantity.
func (i Item) TotalPrice() decimal.Decimal {
	return i.totalPrice
}

// Notes returns the optional free-text note, empty when absent.
func (i Item) Notes() string {
	return i.notes
}

func (i *Item) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("%d is not greater than 0", menuItemID))
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setMenuItemName(menuItemName string) error {
	if menuItemName == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	if len(menuItemName) > MaxMenuItemNameLength {
		return errs.NewValueIsOutOfRangeError("menuItemName length", len(menuItemName), 1, MaxMenuItemNameLength)
	}
	i.menuItemName = menuItemName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setNotes(notes string) error {
	if len(notes) > MaxItemNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxItemNotesLength)
	}
	i.notes = notes
	return nil
}
