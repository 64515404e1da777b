package ports

import (
	"context"

	"refillstation/internal/core/domain/model/websitegate"
)

// WebsiteGateRepository defines the persistence contract for the single
// website availability gate. The gate is injected state: order creation reads
// it through this port instead of consulting a process-wide variable.
type WebsiteGateRepository interface {
	// Get retrieves the current gate. A store that has never been toggled
	// returns an enabled gate.
	Get(ctx context.Context) (*websitegate.WebsiteGate, error)

	// Save persists the gate state.
	Save(ctx context.Context, gate *websitegate.WebsiteGate) error
}
