package queries

import (
	"errors"

	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// Sort directions accepted by ListOrdersQuery.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// ListOrdersQuery retrieves orders for the admin dashboard with optional
// filters. All filters are combined with AND; an unset filter matches
// everything.
type ListOrdersQuery struct {
	status   *order.Status
	delivery *bool

	// search matches customer name or phone, case-insensitively
	search string

	sortBy string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an admin order listing query. Nil filters are
// skipped. sortBy accepts "newest" or "oldest"; empty defaults to newest.
func NewListOrdersQuery(status *order.Status, delivery *bool, search string, sortBy string) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	switch sortBy {
	case "":
		sortBy = SortNewest
	case SortNewest, SortOldest:
	default:
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
	}

	return ListOrdersQuery{
		status:   status,
		delivery: delivery,
		search:   search,
		sortBy:   sortBy,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Delivery returns the delivery filter, or nil when unset.
func (q ListOrdersQuery) Delivery() *bool {
	return q.delivery
}

// Search returns the name/phone search term, possibly empty.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// SortBy returns the sort direction, either SortNewest or SortOldest.
func (q ListOrdersQuery) SortBy() string {
	return q.sortBy
}
