package queries

import (
	"errors"
	"time"

	"refillstation/internal/pkg/errs"
	"refillstation/internal/pkg/guard"
)

var (
	ErrGetMonthlySalesQueryIsNotConstructed = errors.New(
		"GetMonthlySalesQuery must be created via NewGetMonthlySalesQuery constructor",
	)
)

// GetMonthlySalesQuery computes revenue for one calendar month. Only delivered
// orders count toward sales; pending, in-flight and cancelled orders are
// excluded.
type GetMonthlySalesQuery struct {
	year  int
	month time.Month

	guard guard.ConstructorGuard
}

// NewGetMonthlySalesQuery creates a sales report query for the given month.
func NewGetMonthlySalesQuery(year int, month time.Month) (GetMonthlySalesQuery, error) {
	if year < 2000 || year > 9999 {
		return GetMonthlySalesQuery{}, errs.NewValueIsInvalidError("year")
	}

	if month < time.January || month > time.December {
		return GetMonthlySalesQuery{}, errs.NewValueIsInvalidError("month")
	}

	return GetMonthlySalesQuery{
		year:  year,
		month: month,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMonthlySalesQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlySalesQueryIsNotConstructed)
}

// Year returns the report year.
func (q GetMonthlySalesQuery) Year() int {
	return q.year
}

// Month returns the report month.
func (q GetMonthlySalesQuery) Month() time.Month {
	return q.month
}

// GetMonthlySalesQueryResponse summarizes one month of delivered orders.
type GetMonthlySalesQueryResponse struct {
	Year       int
	Month      time.Month
	TotalSales int
	OrderCount int
}
