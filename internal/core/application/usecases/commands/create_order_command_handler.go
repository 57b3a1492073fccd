package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Estimates the route, prices the delivery, persists the order in Pending
// status and announces it to drivers.
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	routePlanner ports.RoutePlanner
	pricing      services.PricingPolicy
	publisher    ports.NotificationPublisher
	logger       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	routePlanner ports.RoutePlanner,
	pricing services.PricingPolicy,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		routePlanner: routePlanner,
		pricing:      pricing,
		publisher:    publisher,
		logger:       logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order creation command. The route estimate and the
// price are computed once here and stored with the order. After the order
// committed, an availability event is published best-effort.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	estimate, err := h.routePlanner.EstimateRoute(ctx, cmd.Origin(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	price, err := h.pricing.CalculatePrice(estimate.DistanceKm, cmd.Cargo().Weight)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		uuid.New(),
		cmd.Origin(), cmd.Destination(),
		cmd.OriginAddress(), cmd.DestinationAddress(),
		cmd.Customer(), cmd.Cargo(),
		estimate, price,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(h.publisher, h.logger, ports.OrderAvailableEvent{
		OrderID:            aggregate.ID(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),
	})

	return aggregate, nil
}
