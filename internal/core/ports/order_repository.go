package ports

import (
	"context"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the only component that writes order state; status mutations flow
// through UpdateStatus so concurrent transitions on the same order are
// serialized by a conditional write.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's status and updated-at timestamp
	// with a compare-and-set on previousStatus. If the stored status no longer
	// matches, the write is rejected with a VersionConflictError so a stale
	// transition never silently overwrites a concurrent one.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previousStatus order.Status) error

	// Delete removes an order entirely. This is the administrative hard
	// delete; it bypasses the lifecycle and is available to staff only.
	Delete(ctx context.Context, id kernel.UUID) error
}
