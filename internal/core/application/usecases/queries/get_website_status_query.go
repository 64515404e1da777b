package queries

import (
	"errors"
	"time"

	"refillstation/internal/pkg/guard"
)

var (
	ErrGetWebsiteStatusQueryIsNotConstructed = errors.New(
		"GetWebsiteStatusQuery must be created via NewGetWebsiteStatusQuery constructor",
	)
)

// GetWebsiteStatusQuery retrieves the current state of the website
// availability gate. The website polls this before rendering the order form.
type GetWebsiteStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWebsiteStatusQuery creates a parameterless gate status query.
func NewGetWebsiteStatusQuery() GetWebsiteStatusQuery {
	return GetWebsiteStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWebsiteStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetWebsiteStatusQueryIsNotConstructed)
}

// GetWebsiteStatusQueryResponse represents the gate state.
type GetWebsiteStatusQueryResponse struct {
	Enabled   bool
	Reason    string
	UpdatedAt time.Time
}
