package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	WaitingForConfirmation ──> Confirmed ──> Cooking ──> ReadyForDelivery ──> Delivering ──> Completed
//	        │                     │             │               │                 │
//	        └─────────────────────┴─────────────┴───────────────┴─────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them, including
// a repeated cancellation. Self-transitions are never allowed.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// WaitingForConfirmation is the initial status when an order is first created.
	// Orders in this status are waiting for the merchant to confirm them.
	WaitingForConfirmation

	// Confirmed indicates the merchant accepted the order.
	Confirmed

	// Cooking indicates the kitchen started preparing the order.
	Cooking

	// ReadyForDelivery indicates the order is packed and waiting for pickup.
	ReadyForDelivery

	// Delivering indicates the order is on its way to the customer.
	Delivering

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled before completion.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusNames returns a map of Status values to their wire names.
// The names are used both for persistence and for the HTTP representation.
func getStatusNames() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "UNKNOWN",
		WaitingForConfirmation: "WAITING_FOR_CONFIRMATION",
		Confirmed:              "CONFIRMED",
		Cooking:                "COOKING",
		ReadyForDelivery:       "READY_FOR_DELIVERY",
		Delivering:             "DELIVERING",
		Completed:              "COMPLETED",
		Cancelled:              "CANCELLED",
	}
}

// getValidStatusNames returns a map of only valid Status values.
func getValidStatusNames() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForConfirmation: "WAITING_FOR_CONFIRMATION",
		Confirmed:              "CONFIRMED",
		Cooking:                "COOKING",
		ReadyForDelivery:       "READY_FOR_DELIVERY",
		Delivering:             "DELIVERING",
		Completed:              "COMPLETED",
		Cancelled:              "CANCELLED",
	}
}

// getAllowedTransitions returns the adjacency table of the state machine.
// A status mapped to an empty set is terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		WaitingForConfirmation: {Confirmed, Cancelled},
		Confirmed:              {Cooking, Cancelled},
		Cooking:                {ReadyForDelivery, Cancelled},
		ReadyForDelivery:       {Delivering, Cancelled},
		Delivering:             {Completed, Cancelled},
		Completed:              {},
		Cancelled:              {},
	}
}

// getDisplayNames returns human-readable descriptions per status,
// used in customer notifications.
func getDisplayNames() map[Status]string {
	return map[Status]string{
		WaitingForConfirmation: "Waiting for order confirmation",
		Confirmed:              "Order confirmed",
		Cooking:                "Cooking",
		ReadyForDelivery:       "Ready for delivery",
		Delivering:             "Delivering",
		Completed:              "Completed",
		Cancelled:              "Cancelled",
	}
}

// StatusFromName parses a wire name (e.g. "COOKING") into a Status.
// Returns an error for unknown names, including "UNKNOWN" itself.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusNames() {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any value outside the enum are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value.
func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// DisplayName returns the human-readable description of the status used in
// customer-facing messages, or "UNKNOWN" for invalid values.
func (s Status) DisplayName() string {
	if name, ok := getDisplayNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves this status.
// Invalid statuses are not terminal; they are simply invalid.
func (s Status) IsTerminal() bool {
	next, ok := getAllowedTransitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next. Self-transitions and any move out of a terminal
// status return false.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition of the state machine.
//
// Returns:
//   - (next, nil) when the transition is in the adjacency table
//   - (0, *InvalidTransitionError) otherwise, including self-transitions and
//     any transition out of Completed or Cancelled
//
// This method is used by Order.UpdateStatus to enforce the lifecycle.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}

// InvalidTransitionError indicates a status change that the state machine
// does not permit.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

// Unwrap makes the error match errs.ErrValueIsInvalid via errors.Is.
func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
