package queries

import (
	"errors"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrGetOrdersByDriverQueryIsNotConstructed = errors.New(
	"GetOrdersByDriverQuery must be created via NewGetOrdersByDriverQuery constructor",
)

// GetOrdersByDriverQuery retrieves the orders assigned to a driver.
type GetOrdersByDriverQuery struct {
	driverID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersByDriverQuery creates a query for a driver's orders.
func NewGetOrdersByDriverQuery(driverID int64) (GetOrdersByDriverQuery, error) {
	if driverID <= 0 {
		return GetOrdersByDriverQuery{}, errs.NewValueIsInvalidError("driverId")
	}

	return GetOrdersByDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDriverQueryIsNotConstructed)
}

// DriverID returns the driver whose orders are requested.
func (q GetOrdersByDriverQuery) DriverID() int64 {
	return q.driverID
}
