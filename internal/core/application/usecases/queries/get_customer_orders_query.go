// Package queries contains read-only operations in the CQRS split. Query
// handlers read the database directly and return plain response structs,
// bypassing the domain aggregates used on the write side.
package queries

import (
	"errors"
	"time"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves the order history of a single customer,
// newest first. Backs the "my orders" page on the website.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderResponse represents one order row on the read side. Shared by the
// customer history and admin listing queries.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   *kernel.UUID
	CustomerName string
	Phone        string
	Address      string
	HasContainer bool
	Delivery     bool
	Price        int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
