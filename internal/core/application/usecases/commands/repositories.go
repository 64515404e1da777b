// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: constructor validation, transaction
// management, domain mutation, persistence.
package commands

import (
	"context"

	"refillstation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the repositories they
// touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WebsiteGateRepoFactory provides access to the website gate repository within a transaction.
	WebsiteGateRepoFactory interface {
		WebsiteGateRepository() ports.WebsiteGateRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// GateUoW manages transactions for gate-only operations.
	GateUoW interface {
		TxManager
		WebsiteGateRepoFactory
	}

	// GateUoWFactory creates new gate unit of work instances.
	GateUoWFactory interface {
		Create() GateUoW
	}

	// UoW manages transactions that span the order store and the website gate.
	// Used by self-service order creation, which reads the gate and writes the
	// order atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		WebsiteGateRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
