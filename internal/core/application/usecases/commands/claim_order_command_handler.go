package commands

import (
	"context"
	"log/slog"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
)

// ClaimOrderCommandHandler arbitrates concurrent claims for an order.
// The exclusivity guarantee lives in the repository's TryClaim, which
// performs the state check and the driver binding as one atomic unit;
// this handler only wraps it in a transaction and emits the pickup event
// for the winner.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "claim_order_handler"),
	}
}

// Handle processes a claim. Exactly one concurrent caller gets the order;
// every other caller observes order.ErrAlreadyAssigned or
// order.ErrNotPending, never a silent success.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().TryClaim(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(h.publisher, h.logger, ports.OrderPickedUpEvent{
		CustomerID:         aggregate.Customer().ID,
		OrderID:            aggregate.ID(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
	})

	return aggregate, nil
}
