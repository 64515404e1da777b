package queries

import (
	"context"
	"time"

	"refillstation/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetMonthlySalesQueryHandler aggregates delivered-order revenue per month.
type GetMonthlySalesQueryHandler struct {
	db *gorm.DB
}

// NewGetMonthlySalesQueryHandler creates a handler for monthly sales reports.
func NewGetMonthlySalesQueryHandler(db *gorm.DB) GetMonthlySalesQueryHandler {
	return GetMonthlySalesQueryHandler{db: db}
}

// Handle executes the report query. A month with no delivered orders yields a
// zero total, not an error.
func (h GetMonthlySalesQueryHandler) Handle(
	ctx context.Context,
	query GetMonthlySalesQuery,
) (GetMonthlySalesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMonthlySalesQueryResponse{}, err
	}

	from := time.Date(query.Year(), query.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var result struct {
		TotalSales int
		OrderCount int
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(price), 0) AS total_sales,
			COUNT(*) AS order_count
		FROM orders
		WHERE status = ?
			AND created_at >= ?
			AND created_at < ?
	`, int(order.Delivered), from, to).Scan(&result).Error
	if err != nil {
		return GetMonthlySalesQueryResponse{}, err
	}

	return GetMonthlySalesQueryResponse{
		Year:       query.Year(),
		Month:      query.Month(),
		TotalSales: result.TotalSales,
		OrderCount: result.OrderCount,
	}, nil
}
