package commands

import (
	"errors"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a lifecycle transition, optionally
// binding a driver and attaching proof-of-delivery artifacts. The optional
// fields are applied only when provided; absent fields leave the stored
// values untouched.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   uuid.UUID
	target    order.Status
	driverID  *int64
	photoURL  *string
	signature *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
// The target status must be a defined lifecycle state; whether the edge is
// allowed is decided against the current state by the handler.
func NewUpdateOrderStatusCommand(
	orderID uuid.UUID,
	target order.Status,
	driverID *int64,
	photoURL *string,
	signature *string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		driverID:  driverID,
		photoURL:  photoURL,
		signature: signature,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.validateDriverID(driverID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() uuid.UUID {
	return c.orderID
}

// Target returns the requested lifecycle state.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// DriverID returns the driver to bind, or nil when not provided.
func (c UpdateOrderStatusCommand) DriverID() *int64 {
	return c.driverID
}

// PhotoURL returns the proof-of-delivery photo location, or nil.
func (c UpdateOrderStatusCommand) PhotoURL() *string {
	return c.photoURL
}

// Signature returns the recipient signature, or nil.
func (c UpdateOrderStatusCommand) Signature() *string {
	return c.signature
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) validateDriverID(driverID *int64) error {
	if driverID != nil && *driverID <= 0 {
		return errs.NewValueIsInvalidError("driverId")
	}

	return nil
}
