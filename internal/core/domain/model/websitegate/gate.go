package websitegate

import (
	"errors"
	"time"

	"refillstation/internal/pkg/errs"
)

// ErrGateIsNotConstructed is returned when a WebsiteGate instance was not
// created through NewWebsiteGate or RestoreWebsiteGate.
var ErrGateIsNotConstructed = errors.New("WebsiteGate must be created via NewWebsiteGate or RestoreWebsiteGate")

// WebsiteGate is the process-wide switch that controls whether new
// self-service orders are accepted. Staff toggle it from the admin surface;
// order creation consults it and refuses with the staff-provided reason while
// it is disabled.
//
// The gate never blocks walk-in intake or staff operations on existing orders.
type WebsiteGate struct {
	enabled bool

	// reason explains a disabled gate to customers; empty while enabled
	reason string

	updatedAt time.Time

	isConstructed bool
}

// NewWebsiteGate creates a gate in the enabled state.
func NewWebsiteGate(now time.Time) *WebsiteGate {
	return &WebsiteGate{
		enabled:       true,
		updatedAt:     now,
		isConstructed: true,
	}
}

// RestoreWebsiteGate reconstructs the gate from persistence.
func RestoreWebsiteGate(enabled bool, reason string, updatedAt time.Time) *WebsiteGate {
	return &WebsiteGate{
		enabled:       enabled,
		reason:        reason,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the gate was created through a factory function.
func (g *WebsiteGate) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGateIsNotConstructed
	}

	return nil
}

// Enabled reports whether new self-service orders are accepted.
func (g *WebsiteGate) Enabled() bool {
	return g.enabled
}

// Reason returns the staff-provided explanation for a disabled gate.
func (g *WebsiteGate) Reason() string {
	return g.reason
}

// UpdatedAt returns the time of the last toggle.
func (g *WebsiteGate) UpdatedAt() time.Time {
	return g.updatedAt
}

// Enable opens the gate for new orders and clears the reason.
func (g *WebsiteGate) Enable(now time.Time) {
	g.enabled = true
	g.reason = ""
	g.updatedAt = now
}

// Disable closes the gate. A non-empty reason is required so customers are
// told why ordering is unavailable.
func (g *WebsiteGate) Disable(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	g.enabled = false
	g.reason = reason
	g.updatedAt = now
	return nil
}

// EnsureAcceptingOrders returns a ServiceUnavailableError carrying the
// staff-provided reason while the gate is disabled, and nil otherwise.
func (g *WebsiteGate) EnsureAcceptingOrders() error {
	if !g.enabled {
		return errs.NewServiceUnavailableError(g.reason)
	}
	return nil
}
