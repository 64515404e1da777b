package queries

import (
	"context"
	"database/sql"
	"time"

	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's orders from the
// database, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders sorted by
// creation time, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_name,
			phone,
			address,
			has_container,
			delivery,
			price,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderResponses(rows)
}

// collectOrderResponses scans order rows produced by the shared column list
// above into response structs.
func collectOrderResponses(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			customerID   uuid.NullUUID
			customerName string
			phone        string
			address      string
			hasContainer bool
			delivery     bool
			price        int
			status       int
			createdAt    time.Time
			updatedAt    time.Time
		)

		err := rows.Scan(
			&id,
			&customerID,
			&customerName,
			&phone,
			&address,
			&hasContainer,
			&delivery,
			&price,
			&status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var customerRef *kernel.UUID
		if customerID.Valid {
			cID, cErr := kernel.UUIDFromBytes(customerID.UUID[:])
			if cErr != nil {
				return nil, cErr
			}
			customerRef = &cID
		}

		orders = append(orders, OrderResponse{
			ID:           orderID,
			CustomerID:   customerRef,
			CustomerName: customerName,
			Phone:        phone,
			Address:      address,
			HasContainer: hasContainer,
			Delivery:     delivery,
			Price:        price,
			Status:       order.Status(status).String(),
			CreatedAt:    createdAt,
			UpdatedAt:    updatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
