package commands

import (
	"context"

	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/clock"
)

// CreateWalkInOrderCommandHandler records point-of-sale transactions.
// The resulting order enters the lifecycle directly at Delivered; it never
// visits Pending or OnTheWay and is not subject to the availability gate.
type CreateWalkInOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewCreateWalkInOrderCommandHandler creates a handler for walk-in intake.
func NewCreateWalkInOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) CreateWalkInOrderCommandHandler {
	return CreateWalkInOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the walk-in intake command and returns the persisted order.
func (h *CreateWalkInOrderCommandHandler) Handle(ctx context.Context, cmd CreateWalkInOrderCommand) (*order.Order, error) {
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

	newOrder, err := order.NewWalkInOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.HasContainer(),
		cmd.Delivery(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
