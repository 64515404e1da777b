package queries

import (
	"context"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTopCustomersQueryHandler ranks customers by delivered-order spend.
type GetTopCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetTopCustomersQueryHandler creates a handler for the spend ranking.
func NewGetTopCustomersQueryHandler(db *gorm.DB) GetTopCustomersQueryHandler {
	return GetTopCustomersQueryHandler{db: db}
}

// Handle executes the ranking query. Customers with equal spend are ordered by
// name so the ranking is stable. The name shown is the one from the customer's
// most recent order.
func (h GetTopCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetTopCustomersQuery,
) ([]GetTopCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetTopCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			(ARRAY_AGG(customer_name ORDER BY created_at DESC))[1] AS customer_name,
			SUM(price) AS total_spent,
			COUNT(*) AS order_count
		FROM orders
		WHERE status = ?
			AND customer_id IS NOT NULL
		GROUP BY customer_id
		ORDER BY total_spent DESC, customer_name ASC
		LIMIT ?
	`, int(order.Delivered), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			customerID   uuid.UUID
			customerName string
			totalSpent   int
			orderCount   int
		)

		if err = rows.Scan(&customerID, &customerName, &totalSpent, &orderCount); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		customers = append(customers, GetTopCustomersQueryResponse{
			CustomerID:   id,
			CustomerName: customerName,
			TotalSpent:   totalSpent,
			OrderCount:   orderCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
