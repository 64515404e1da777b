package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetWebsiteStatusQueryHandler reads the availability gate row directly.
type GetWebsiteStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetWebsiteStatusQueryHandler creates a handler for gate status queries.
func NewGetWebsiteStatusQueryHandler(db *gorm.DB) GetWebsiteStatusQueryHandler {
	return GetWebsiteStatusQueryHandler{db: db}
}

// Handle executes the gate status query. A store that has never been toggled
// has no gate row, which reads as enabled.
func (h GetWebsiteStatusQueryHandler) Handle(
	ctx context.Context,
	query GetWebsiteStatusQuery,
) (GetWebsiteStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWebsiteStatusQueryResponse{}, err
	}

	var row struct {
		Enabled   bool
		Reason    string
		UpdatedAt time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT enabled, reason, updated_at
		FROM website_gate
		LIMIT 1
	`).Scan(&row)
	if result.Error != nil {
		return GetWebsiteStatusQueryResponse{}, result.Error
	}

	if result.RowsAffected == 0 {
		return GetWebsiteStatusQueryResponse{Enabled: true}, nil
	}

	return GetWebsiteStatusQueryResponse{
		Enabled:   row.Enabled,
		Reason:    row.Reason,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
