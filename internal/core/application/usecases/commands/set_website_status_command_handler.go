package commands

import (
	"context"

	"refillstation/internal/core/domain/model/websitegate"
	"refillstation/internal/pkg/clock"
)

// SetWebsiteStatusCommandHandler toggles the website availability gate.
type SetWebsiteStatusCommandHandler struct {
	uowFactory GateUoWFactory
	clock      clock.Clock
}

// NewSetWebsiteStatusCommandHandler creates a handler for gate toggling.
func NewSetWebsiteStatusCommandHandler(uowFactory GateUoWFactory, clk clock.Clock) SetWebsiteStatusCommandHandler {
	return SetWebsiteStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the gate toggle command and returns the stored gate state.
func (h *SetWebsiteStatusCommandHandler) Handle(ctx context.Context, cmd SetWebsiteStatusCommand) (*websitegate.WebsiteGate, error) {
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

	if cmd.Enabled() {
		gate.Enable(now)
	} else if err = gate.Disable(cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = uow.WebsiteGateRepository().Save(ctx, gate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return gate, nil
}
