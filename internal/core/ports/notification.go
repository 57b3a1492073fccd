package ports

import (
	"context"

	"github.com/google/uuid"
)

// Event kinds used as routing keys when publishing to the message broker.
const (
	EventKindOrderAvailable = "order.available"
	EventKindOrderPickedUp  = "order.picked_up"
	EventKindOrderCompleted = "order.completed"
)

// Event is a lifecycle notification emitted after an order mutation.
type Event interface {
	Kind() string
}

// OrderAvailableEvent announces a freshly created order that drivers can claim.
type OrderAvailableEvent struct {
	OrderID            uuid.UUID `json:"orderId"`
	OriginAddress      string    `json:"originAddress"`
	DestinationAddress string    `json:"destinationAddress"`
}

func (OrderAvailableEvent) Kind() string { return EventKindOrderAvailable }

// OrderPickedUpEvent announces that a driver claimed the order.
type OrderPickedUpEvent struct {
	CustomerID         *int64    `json:"customerId"`
	OrderID            uuid.UUID `json:"orderId"`
	OriginAddress      string    `json:"originAddress"`
	DestinationAddress string    `json:"destinationAddress"`
}

func (OrderPickedUpEvent) Kind() string { return EventKindOrderPickedUp }

// OrderCompletedEvent announces that the order reached Delivered.
type OrderCompletedEvent struct {
	CustomerID         *int64    `json:"customerId"`
	OrderID            uuid.UUID `json:"orderId"`
	DestinationAddress string    `json:"destinationAddress"`
}

func (OrderCompletedEvent) Kind() string { return EventKindOrderCompleted }

// NotificationPublisher is the outbound sink for lifecycle events.
//
// Publishing is best effort from the caller's point of view: command
// handlers emit events after the order mutation committed, log publish
// failures and never roll back or fail the triggering operation because of
// them.
type NotificationPublisher interface {
	Publish(ctx context.Context, event Event) error
}
