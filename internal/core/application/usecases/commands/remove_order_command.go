package commands

import (
	"errors"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/guard"
)

var (
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)
)

// RemoveOrderCommand represents a staff request to permanently delete an order
// record. Removal is an administrative correction, not a lifecycle event, so
// it is restricted to staff.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID, actor order.Actor) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the party requesting the deletion.
func (c RemoveOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
