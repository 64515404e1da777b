package order

import (
	"fmt"

	"refillstation/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Self-service orders enter at Pending and move through the graph below.
// Walk-in orders enter directly at Delivered because the in-person
// transaction is already fulfilled when it is recorded.
//
//	Pending ──┬──> OnTheWay ──> Delivered
//	          │        │
//	          │        └──> Cancelled
//	          ├──> Delivered
//	          └──> Cancelled
//
// Staff may additionally move an order between any two valid states as an
// operational correction. Delivered and Cancelled are terminal for
// customer-initiated transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a self-service order, waiting for
	// staff to start fulfilling it. Only Pending orders can be cancelled
	// by the customer.
	Pending

	// OnTheWay indicates staff has dispatched the order for delivery.
	OnTheWay

	// Delivered indicates the order has been fulfilled.
	// Walk-in orders are created directly in this status.
	Delivered

	// Cancelled indicates the order was withdrawn, either by the customer
	// within the cancellation window or by staff.
	Cancelled
)

// getStatusStrings returns the canonical spelling for every Status value,
// including Unknown. The vocabulary is fixed; callers never persist or
// transmit any other spelling.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses the canonical string form of a status.
// Returns a ValueIsInvalidError for anything outside the fixed vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one an order may hold.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no customer-initiated exit.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a staff-driven move from the receiver to target and
// returns the resulting status.
//
// Staff transitions are deliberately permissive: any valid status may be set
// from any valid status, which covers both the normal forward flow and manual
// operational corrections (including reverting OnTheWay to Pending). A move
// involving an invalid status on either side fails with IllegalTransitionError
// and the receiver is left for the caller unchanged.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, errs.NewIllegalTransitionErrorWithCause(s.String(), target.String(), err)
	}
	if err := target.Validate(); err != nil {
		return Unknown, errs.NewIllegalTransitionErrorWithCause(s.String(), target.String(), err)
	}

	return target, nil
}
