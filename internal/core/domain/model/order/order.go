package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/route"
	"pedidos/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrAlreadyAssigned is the claim conflict for an order that already has
	// a driver bound to it.
	ErrAlreadyAssigned = errors.New("order is already assigned to a driver")

	// ErrNotPending is the claim conflict for an order that left the pending
	// state without a driver (cancelled or failed straight from pending).
	ErrNotPending = errors.New("order is not pending")

	// ErrCannotDelete is returned when deletion is requested for an order
	// that is no longer pending.
	ErrCannotDelete = errors.New("only pending unassigned orders can be deleted")
)

// Customer identifies who requested the delivery. ID is the optional upstream
// identity from the accounts service; contact fields are snapshots taken at
// creation time.
type Customer struct {
	ID    *int64
	Name  string
	Email string
	Phone string
}

// Cargo describes what is being delivered. Weight is optional and expressed
// in kilograms.
type Cargo struct {
	Type                string
	Weight              *float64
	Dimensions          string
	SpecialInstructions string
}

// Order is the aggregate root of the delivery lifecycle. It is created in
// Pending status with a route estimate and price computed exactly once, may
// be claimed by exactly one driver, and then moves through the status chain
// until it reaches a terminal state.
//
// Invariants:
//   - driver is absent while the order is Pending
//   - deliveredAt is set exactly once, when the order becomes Delivered
//   - estimate and price are fixed at creation and never recomputed
type Order struct {
	id uuid.UUID

	origin             kernel.Coordinate
	destination        kernel.Coordinate
	originAddress      string
	destinationAddress string

	customer Customer
	cargo    Cargo

	driverID *int64
	status   Status

	estimate   route.Estimate
	totalPrice float64

	deliveredAt       *time.Time
	deliveryPhotoURL  string
	deliverySignature string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status. The route estimate and total
// price must already be computed; they are stored verbatim and never touched
// again. Creation and update timestamps are set to the current time.
func NewOrder(
	id uuid.UUID,
	origin kernel.Coordinate,
	destination kernel.Coordinate,
	originAddress string,
	destinationAddress string,
	customer Customer,
	cargo Cargo,
	estimate route.Estimate,
	totalPrice float64,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setGeography(origin, destination, originAddress, destinationAddress),
		o.setCustomer(customer),
		o.setCargo(cargo),
		o.setEstimate(estimate, totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state needed to rebuild an order
// from storage.
type RestoreOrderParams struct {
	ID                 uuid.UUID
	Origin             kernel.Coordinate
	Destination        kernel.Coordinate
	OriginAddress      string
	DestinationAddress string
	Customer           Customer
	Cargo              Cargo
	Estimate           route.Estimate
	TotalPrice         float64
	Status             Status
	DriverID           *int64
	DeliveredAt        *time.Time
	DeliveryPhotoURL   string
	DeliverySignature  string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder rebuilds an order from persistence, re-validating the same
// invariants NewOrder enforces plus the status/driver consistency rules.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		p.ID,
		p.Origin, p.Destination,
		p.OriginAddress, p.DestinationAddress,
		p.Customer, p.Cargo,
		p.Estimate, p.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}

	if p.Status == Pending && p.DriverID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("pending order %s cannot have a driver", p.ID))
	}

	if (p.DeliveredAt != nil) != (p.Status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("deliveredAt must be set exactly when order %s is delivered", p.ID))
	}

	o.status = p.Status
	o.driverID = p.DriverID
	o.deliveredAt = p.DeliveredAt
	o.deliveryPhotoURL = p.DeliveryPhotoURL
	o.deliverySignature = p.DeliverySignature
	o.createdAt = p.CreatedAt
	o.updatedAt = p.UpdatedAt

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() uuid.UUID {
	return o.id
}

// Origin returns the pickup coordinate.
func (o *Order) Origin() kernel.Coordinate {
	return o.origin
}

// Destination returns the drop-off coordinate.
func (o *Order) Destination() kernel.Coordinate {
	return o.destination
}

// OriginAddress returns the free-text pickup address.
func (o *Order) OriginAddress() string {
	return o.originAddress
}

// DestinationAddress returns the free-text drop-off address.
func (o *Order) DestinationAddress() string {
	return o.destinationAddress
}

// Customer returns the customer snapshot taken at creation time.
func (o *Order) Customer() Customer {
	return o.customer
}

// Cargo returns the cargo description.
func (o *Order) Cargo() Cargo {
	return o.cargo
}

// Driver returns the bound driver's ID, or nil while the order is unclaimed.
func (o *Order) Driver() *int64 {
	return o.driverID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Estimate returns the route estimate computed at creation.
func (o *Order) Estimate() route.Estimate {
	return o.estimate
}

// TotalPrice returns the price computed at creation.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// DeliveryPhotoURL returns the proof-of-delivery photo location, if any.
func (o *Order) DeliveryPhotoURL() string {
	return o.deliveryPhotoURL
}

// DeliverySignature returns the recipient signature, if any.
func (o *Order) DeliverySignature() string {
	return o.deliverySignature
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsAvailable reports whether the order can still be claimed.
func (o *Order) IsAvailable() bool {
	return o.status == Pending && o.driverID == nil
}

// TransitionTo moves the order along the lifecycle. Entering Delivered stamps
// deliveredAt; the transition table guarantees that can happen at most once.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	o.touch()
	return nil
}

// AssignDriver binds a driver outside the claim path (partial status update).
// A driver already bound to the order stays bound; attempting to swap in a
// different one fails with ErrAlreadyAssigned.
func (o *Order) AssignDriver(driverID int64) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not a valid driver id", driverID))
	}

	if o.driverID != nil && *o.driverID != driverID {
		return ErrAlreadyAssigned
	}

	o.driverID = &driverID
	o.touch()
	return nil
}

// AttachDeliveryProof records the optional proof-of-delivery artifacts.
// Nil parameters leave the current values untouched.
func (o *Order) AttachDeliveryProof(photoURL, signature *string) {
	if photoURL == nil && signature == nil {
		return
	}

	if photoURL != nil {
		o.deliveryPhotoURL = *photoURL
	}
	if signature != nil {
		o.deliverySignature = *signature
	}
	o.touch()
}

// EnsureDeletable checks the deletion precondition: only pending, unclaimed
// orders may be removed.
func (o *Order) EnsureDeletable() error {
	if o.status != Pending || o.driverID != nil {
		return fmt.Errorf("%w: order %s is %s", ErrCannotDelete, o.id, o.status)
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setGeography(origin, destination kernel.Coordinate, originAddress, destinationAddress string) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if strings.TrimSpace(originAddress) == "" {
		return errs.NewValueIsRequiredError("originAddress")
	}
	if strings.TrimSpace(destinationAddress) == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}

	o.origin = origin
	o.destination = destination
	o.originAddress = originAddress
	o.destinationAddress = destinationAddress
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	o.customer = customer
	return nil
}

func (o *Order) setCargo(cargo Cargo) error {
	if strings.TrimSpace(cargo.Type) == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	if cargo.Weight != nil && *cargo.Weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargoWeight",
			fmt.Errorf("%f is negative", *cargo.Weight))
	}

	o.cargo = cargo
	return nil
}

func (o *Order) setEstimate(estimate route.Estimate, totalPrice float64) error {
	if estimate.DistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDistanceKm",
			fmt.Errorf("%f is negative", estimate.DistanceKm))
	}
	if estimate.DurationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDurationMinutes",
			fmt.Errorf("%d is negative", estimate.DurationMinutes))
	}
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%f is negative", totalPrice))
	}

	o.estimate = estimate
	o.totalPrice = totalPrice
	return nil
}
