package commands

import (
	"errors"

	"github.com/google/uuid"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a driver's request to take exclusive
// ownership of a pending order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  uuid.UUID
	driverID int64

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command for the given order and driver.
func NewClaimOrderCommand(orderID uuid.UUID, driverID int64) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order to claim.
func (c ClaimOrderCommand) OrderID() uuid.UUID {
	return c.orderID
}

// DriverID returns the claiming driver.
func (c ClaimOrderCommand) DriverID() int64 {
	return c.driverID
}

func (c *ClaimOrderCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setDriverID(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	c.driverID = driverID
	return nil
}
