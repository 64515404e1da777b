package commands

import (
	"errors"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrCreateWalkInOrderCommandIsNotConstructed = errors.New(
		"CreateWalkInOrderCommand must be created via NewCreateWalkInOrderCommand constructor",
	)
)

// CreateWalkInOrderCommand represents a staff request to record an in-person
// transaction. Walk-in orders have no customer reference and are created
// already fulfilled, so they bypass the website availability gate.
type CreateWalkInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	phone        string
	address      string
	hasContainer bool
	delivery     bool

	guard guard.ConstructorGuard
}

// NewCreateWalkInOrderCommand creates a command to record a walk-in order.
// Name and phone are required just as on the self-service path.
func NewCreateWalkInOrderCommand(
	orderID kernel.UUID,
	customerName string,
	phone string,
	address string,
	hasContainer bool,
	delivery bool,
) (CreateWalkInOrderCommand, error) {
	cmd := CreateWalkInOrderCommand{
		address:      address,
		hasContainer: hasContainer,
		delivery:     delivery,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
	); err != nil {
		return CreateWalkInOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWalkInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWalkInOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateWalkInOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name staff entered at the counter.
func (c CreateWalkInOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact phone number.
func (c CreateWalkInOrderCommand) Phone() string {
	return c.phone
}

// Address returns the address staff entered, possibly empty.
func (c CreateWalkInOrderCommand) Address() string {
	return c.address
}

// HasContainer reports whether the customer refills their own container.
func (c CreateWalkInOrderCommand) HasContainer() bool {
	return c.hasContainer
}

// Delivery reports whether the order is delivered.
func (c CreateWalkInOrderCommand) Delivery() bool {
	return c.delivery
}

func (c *CreateWalkInOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWalkInOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateWalkInOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
