package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByDriverQueryHandler lists a driver's orders, most recently
// touched first, so active deliveries surface at the top.
type GetOrdersByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDriverQueryHandler creates a handler for driver workload reads.
func NewGetOrdersByDriverQueryHandler(db *gorm.DB) GetOrdersByDriverQueryHandler {
	return GetOrdersByDriverQueryHandler{db: db}
}

// Handle returns the driver's orders ordered by last update descending.
func (h GetOrdersByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDriverQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelectColumns+` WHERE driver_id = ? ORDER BY updated_at DESC`, query.DriverID()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rowsToResponses(rows)
}
