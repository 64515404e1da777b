package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders for the admin dashboard, applying
// the query's filters with a dynamically built WHERE clause.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for admin order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns matching orders.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}

	if delivery := query.Delivery(); delivery != nil {
		conditions = append(conditions, "delivery = ?")
		args = append(args, *delivery)
	}

	if search := query.Search(); search != "" {
		conditions = append(conditions, "(customer_name ILIKE ? OR phone ILIKE ?)")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	sql := `
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
	`
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	if query.SortBy() == SortOldest {
		sql += " ORDER BY created_at ASC"
	} else {
		sql += " ORDER BY created_at DESC"
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderResponses(rows)
}
