package commands

import (
	"context"
	"log/slog"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies lifecycle transitions. The edge is
// validated against the current state inside the transaction; entering
// Delivered stamps the delivery timestamp and publishes the completion event
// exactly once, because a repeat request fails the transition check before
// any event is emitted.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle loads the order, applies the optional driver binding and proof
// artifacts, performs the transition and persists the result atomically.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.DriverID() != nil {
		if err = aggregate.AssignDriver(*cmd.DriverID()); err != nil {
			return nil, err
		}
	}

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	aggregate.AttachDeliveryProof(cmd.PhotoURL(), cmd.Signature())

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if aggregate.Status() == order.Delivered {
		publishEvent(h.publisher, h.logger, ports.OrderCompletedEvent{
			CustomerID:         aggregate.Customer().ID,
			OrderID:            aggregate.ID(),
			DestinationAddress: aggregate.DestinationAddress(),
		})
	}

	return aggregate, nil
}
