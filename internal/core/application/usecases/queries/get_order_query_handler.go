package queries

import (
	"context"

	"gorm.io/gorm"

	"pedidos/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order read model, or errs.ObjectNotFoundError when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelectColumns+` WHERE id = ?`, query.OrderID()).
		Scan(&rows).Error
	if err != nil {
		return OrderResponse{}, err
	}

	if len(rows) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return rows[0].toResponse()
}
