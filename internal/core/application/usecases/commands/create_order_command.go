package commands

import (
	"errors"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request from an authenticated customer to
// place a refill order through the website.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "Ana Reyes", "09123456789", "123 Main St", true, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	phone        string
	address      string
	hasContainer bool
	delivery     bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a self-service order.
// Validates that the order id, the customer reference, the customer name, and
// the phone are present. The delivery/address rule is enforced by the order
// aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	phone string,
	address string,
	hasContainer bool,
	delivery bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address:      address,
		hasContainer: hasContainer,
		delivery:     delivery,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the authenticated customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the name entered on the order form.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact phone number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address, possibly empty for pickup orders.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// HasContainer reports whether the customer refills their own container.
func (c CreateOrderCommand) HasContainer() bool {
	return c.hasContainer
}

// Delivery reports whether the order should be delivered.
func (c CreateOrderCommand) Delivery() bool {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
