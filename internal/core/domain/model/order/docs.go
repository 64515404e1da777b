// Package order provides the domain model for water refill orders. It
// implements the Order aggregate root with deterministic pricing, the status
// lifecycle, and the customer cancellation window.
//
// The package includes:
//   - Order: the aggregate root owning price, status, and timestamps
//   - Status: a state machine over Pending, OnTheWay, Delivered, Cancelled
//   - Actor: the role invoking a transition (Staff or Customer)
//   - ComputePrice: the pricing decision table
//
// Key business rules:
//   - Price is derived solely from (hasContainer, delivery): 200 without a
//     container, 30 for a delivered refill, 25 for a picked-up refill
//   - Self-service orders start Pending; walk-in orders start Delivered
//   - Staff may set any valid status from any valid status (operational override)
//   - Customers may only cancel a Pending order within one hour of creation
//   - Delivered and Cancelled are terminal for customer-initiated transitions
package order
