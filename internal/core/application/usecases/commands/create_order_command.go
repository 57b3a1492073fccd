package commands

import (
	"errors"
	"strings"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// It carries the pickup and drop-off geography, the customer snapshot and
// the cargo description; the route estimate and the price are computed by
// the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	origin             kernel.Coordinate
	destination        kernel.Coordinate
	originAddress      string
	destinationAddress string
	customer           order.Customer
	cargo              order.Cargo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates coordinates, requires non-blank addresses, customer name/email
// and cargo type, and rejects a negative cargo weight.
func NewCreateOrderCommand(
	origin kernel.Coordinate,
	destination kernel.Coordinate,
	originAddress string,
	destinationAddress string,
	customer order.Customer,
	cargo order.Cargo,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setGeography(origin, destination, originAddress, destinationAddress),
		cmd.setCustomer(customer),
		cmd.setCargo(cargo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Origin returns the pickup coordinate.
func (c CreateOrderCommand) Origin() kernel.Coordinate {
	return c.origin
}

// Destination returns the drop-off coordinate.
func (c CreateOrderCommand) Destination() kernel.Coordinate {
	return c.destination
}

// OriginAddress returns the free-text pickup address.
func (c CreateOrderCommand) OriginAddress() string {
	return c.originAddress
}

// DestinationAddress returns the free-text drop-off address.
func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

// Customer returns the customer snapshot.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Cargo returns the cargo description.
func (c CreateOrderCommand) Cargo() order.Cargo {
	return c.cargo
}

func (c *CreateOrderCommand) setGeography(
	origin, destination kernel.Coordinate,
	originAddress, destinationAddress string,
) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if strings.TrimSpace(originAddress) == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	if strings.TrimSpace(destinationAddress) == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}

	c.origin = origin
	c.destination = destination
	c.originAddress = originAddress
	c.destinationAddress = destinationAddress
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setCargo(cargo order.Cargo) error {
	if strings.TrimSpace(cargo.Type) == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	if cargo.Weight != nil && *cargo.Weight < 0 {
		return errs.NewValueIsInvalidError("cargoWeight")
	}

	c.cargo = cargo
	return nil
}
