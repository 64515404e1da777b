package commands

import (
	"context"

	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/clock"
)

// ChangeOrderStatusCommandHandler applies lifecycle transitions to orders.
//
// The update is serialized against concurrent writers: the repository only
// persists the new status if the row still carries the status the handler
// read, and reports a VersionConflictError otherwise.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the status change command and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := aggregate.Status()

	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.Actor(), now); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().UpdateStatus(ctx, aggregate, previousStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
