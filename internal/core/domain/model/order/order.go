package order

import (
	"errors"
	"fmt"
	"time"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the factory functions. This ensures all orders are properly
	// validated and priced.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewWalkInOrder, or RestoreOrder")
)

// WalkInAddress is the sentinel address recorded for walk-in orders that are
// not delivered anywhere.
const WalkInAddress = "Walk-in"

// CancellationWindow is how long after creation a customer may self-cancel a
// Pending order. Eligibility is always recomputed from CreatedAt and the
// current time; it is never stored, so it cannot go stale.
const CancellationWindow = time.Hour

// Order is the aggregate root for a water refill order. It owns the pricing
// result and the status lifecycle.
//
// Order maintains these invariants:
//   - price always matches ComputePrice(hasContainer, delivery); it is set
//     once at creation and never independently writable
//   - delivery orders created through the self-service path have a non-empty
//     address; non-delivery self-service orders carry no address
//   - status changes only through ChangeStatus, which enforces the transition
//     graph per acting role
//   - createdAt is immutable and anchors the cancellation window
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID links the order to a registered customer.
	// Nil for walk-in orders recorded by staff.
	customerID *kernel.UUID

	customerName string
	phone        string
	address      string

	// hasContainer and delivery drive the price and the address rules
	hasContainer bool
	delivery     bool

	// price in whole currency units, computed once at creation
	price int

	// status is the current state in the order lifecycle
	status Status

	// createdAt anchors the customer cancellation window
	createdAt time.Time

	// updatedAt is refreshed on every status transition
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a self-service order for a registered customer.
//
// Validates that customerID, customerName, and phone are present, and that a
// delivery order carries a non-empty address. Non-delivery orders store no
// address. The price is computed from (hasContainer, delivery) and the order
// starts in Pending at the given creation time.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	phone string,
	address string,
	hasContainer bool,
	delivery bool,
	now time.Time,
) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	o := &Order{
		customerID:    &customerID,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
	); err != nil {
		return nil, err
	}

	if delivery && address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if !delivery {
		address = ""
	}

	o.address = address
	o.hasContainer = hasContainer
	o.delivery = delivery
	o.price = ComputePrice(hasContainer, delivery)
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// NewWalkInOrder records an in-person transaction that is already fulfilled.
//
// Walk-in orders have no customer link and enter the lifecycle directly at
// Delivered; they never visit Pending or OnTheWay. A non-delivery walk-in
// gets the WalkInAddress sentinel; a delivery walk-in keeps whatever address
// staff provided, including none.
func NewWalkInOrder(
	id kernel.UUID,
	customerName string,
	phone string,
	address string,
	hasContainer bool,
	delivery bool,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Delivered,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
	); err != nil {
		return nil, err
	}

	if !delivery {
		address = WalkInAddress
	}

	o.address = address
	o.hasContainer = hasContainer
	o.delivery = delivery
	o.price = ComputePrice(hasContainer, delivery)
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored price and
// address are trusted as-is; creation-time rules were enforced when the order
// was first made. Status and identifiers are still validated.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	customerName string,
	phone string,
	address string,
	hasContainer bool,
	delivery bool,
	price int,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		o.customerID = customerID
	}

	o.address = address
	o.hasContainer = hasContainer
	o.delivery = delivery
	o.price = price
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order instance was created through a factory function.
// Call this when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier, or nil for walk-in orders.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// CustomerName returns the customer's name as entered at creation.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the delivery address, the walk-in sentinel, or "".
func (o *Order) Address() string {
	return o.address
}

// HasContainer reports whether the customer refills their own container.
func (o *Order) HasContainer() bool {
	return o.hasContainer
}

// Delivery reports whether the order is delivered to the customer.
func (o *Order) Delivery() bool {
	return o.delivery
}

// Price returns the immutable price computed at creation.
func (o *Order) Price() int {
	return o.price
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the immutable creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanCustomerCancel reports whether the owning customer may still cancel the
// order at the given instant: the order is Pending and less than
// CancellationWindow has elapsed since creation. Once false it never becomes
// true again for the same order.
func (o *Order) CanCustomerCancel(now time.Time) bool {
	return o.status == Pending && now.Sub(o.createdAt) < CancellationWindow
}

// CancellationTimeRemaining returns how long the customer has left to cancel,
// floored at zero. Zero means cancellation is forbidden; there is no grace
// period at the boundary.
func (o *Order) CancellationTimeRemaining(now time.Time) time.Duration {
	if o.status != Pending {
		return 0
	}

	remaining := CancellationWindow - now.Sub(o.createdAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ChangeStatus transitions the order to target on behalf of the given actor
// and refreshes UpdatedAt. On error the order is left unmodified.
//
// Staff may move the order between any valid states. Customers may only
// cancel: the target must be Cancelled, the order must still be Pending, and
// the cancellation window must not have elapsed; anything else fails with
// ActionIsForbiddenError.
func (o *Order) ChangeStatus(target Status, actor Actor, now time.Time) error {
	switch actor {
	case ActorStaff:
		newStatus, err := o.status.TransitionTo(target)
		if err != nil {
			return err
		}
		o.status = newStatus

	case ActorCustomer:
		if target != Cancelled {
			return errs.NewActionIsForbiddenError(
				fmt.Sprintf("customers may only cancel orders, not set status to %s", target),
			)
		}
		if o.status != Pending {
			return errs.NewActionIsForbiddenError(
				fmt.Sprintf("only pending orders can be cancelled, order is %s", o.status),
			)
		}
		if !o.CanCustomerCancel(now) {
			return errs.NewActionIsForbiddenError("the cancellation window has elapsed")
		}
		o.status = Cancelled

	default:
		return actor.Validate()
	}

	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}
