package queries

import (
	"errors"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrGetTopCustomersQueryIsNotConstructed = errors.New(
		"GetTopCustomersQuery must be created via NewGetTopCustomersQuery constructor",
	)
)

const maxTopCustomersLimit = 100

// GetTopCustomersQuery ranks registered customers by total spend on delivered
// orders. Walk-in orders have no customer reference and are excluded.
type GetTopCustomersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetTopCustomersQuery creates a top-customers ranking query.
func NewGetTopCustomersQuery(limit int) (GetTopCustomersQuery, error) {
	if limit < 1 || limit > maxTopCustomersLimit {
		return GetTopCustomersQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetTopCustomersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTopCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopCustomersQueryIsNotConstructed)
}

// Limit returns the maximum number of customers to return.
func (q GetTopCustomersQuery) Limit() int {
	return q.limit
}

// GetTopCustomersQueryResponse represents one customer in the spend ranking.
type GetTopCustomersQueryResponse struct {
	CustomerID   kernel.UUID
	CustomerName string
	TotalSpent   int
	OrderCount   int
}
