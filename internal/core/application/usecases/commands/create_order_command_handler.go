package commands

import (
	"context"

	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/clock"
)

// CreateOrderCommandHandler handles self-service order creation.
//
// It consults the website availability gate before anything else: while the
// gate is disabled the order is refused with a ServiceUnavailableError
// carrying the staff-provided reason. Price and initial Pending status are
// set by the order aggregate; both are fixed at creation.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for self-service order creation.
// Requires a UoWFactory spanning the gate and order repositories, and a clock
// to stamp creation time.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the order creation command and returns the persisted order.
// The gate read and the order insert happen in one transaction, so an order is
// never persisted against a gate state that was not observed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	gate, err := uow.WebsiteGateRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	if err = gate.EnsureAcceptingOrders(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
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
