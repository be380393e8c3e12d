// Package order provides domain entities and business logic for order
// management in the food delivery system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items, monetary totals, and the lifecycle
//   - Item: A line item snapshotting the menu item name and price at order time
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod, PaymentStatus: closed enumerations for the payment side
//
// Key business rules:
//   - Orders carry 1 to 50 line items; items and totals are immutable after creation
//   - The order total is the exact decimal sum of item totals, computed once
//   - The order number is assigned once at creation and never changes
//   - Status follows the fixed workflow ending in Completed or Cancelled;
//     terminal states permit no further transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
