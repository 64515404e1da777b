package order

import (
	"fmt"

	"refillstation/internal/pkg/errs"
)

// Actor identifies the role requesting a status transition. Staff carries the
// broad privilege of moving an order between any valid states; Customer may
// only cancel a Pending order within the cancellation window.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor.
	ActorUnknown Actor = iota

	// ActorStaff is a refill station operator acting through the admin surface.
	ActorStaff

	// ActorCustomer is the registered customer who owns the order.
	ActorCustomer
)

// Validate checks if the Actor value is a recognized role.
func (a Actor) Validate() error {
	if a != ActorStaff && a != ActorCustomer {
		return errs.NewValueIsInvalidErrorWithCause("actor is invalid", fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}

// String returns the role name, or "Unknown" for invalid values.
func (a Actor) String() string {
	switch a {
	case ActorStaff:
		return "Staff"
	case ActorCustomer:
		return "Customer"
	default:
		return "Unknown"
	}
}
