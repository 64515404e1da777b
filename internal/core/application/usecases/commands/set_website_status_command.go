package commands

import (
	"errors"

	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrSetWebsiteStatusCommandIsNotConstructed = errors.New(
		"SetWebsiteStatusCommand must be created via NewSetWebsiteStatusCommand constructor",
	)
)

// SetWebsiteStatusCommand represents a staff request to toggle self-service
// order intake. Disabling requires a reason, which is surfaced to customers
// attempting to place orders.
type SetWebsiteStatusCommand struct { //nolint:recvcheck //using for validation
	enabled bool
	reason  string

	guard guard.ConstructorGuard
}

// NewSetWebsiteStatusCommand creates a command to toggle the availability gate.
// A reason is required when disabling and rejected when enabling.
func NewSetWebsiteStatusCommand(enabled bool, reason string) (SetWebsiteStatusCommand, error) {
	if !enabled && reason == "" {
		return SetWebsiteStatusCommand{}, errs.NewValueIsRequiredError("reason")
	}

	if enabled && reason != "" {
		return SetWebsiteStatusCommand{}, errs.NewValueIsInvalidError("reason")
	}

	return SetWebsiteStatusCommand{
		enabled: enabled,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetWebsiteStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetWebsiteStatusCommandIsNotConstructed)
}

// Enabled reports whether self-service intake should be accepting orders.
func (c SetWebsiteStatusCommand) Enabled() bool {
	return c.enabled
}

// Reason returns the staff-provided explanation when disabling.
func (c SetWebsiteStatusCommand) Reason() string {
	return c.reason
}
