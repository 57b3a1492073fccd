package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists the claimable order pool. The filter
// matches the claim precondition exactly: pending status and no driver.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the open pool read.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns the claimable orders, newest first.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelectColumns+` WHERE status = 'PENDING' AND driver_id IS NULL ORDER BY created_at DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rowsToResponses(rows)
}
