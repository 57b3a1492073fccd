package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		mustCoordinate(t, -23.5505, -46.6333),
		mustCoordinate(t, -23.5614, -46.6560),
		"Rua Augusta, 100, São Paulo",
		"Avenida Paulista, 1000, São Paulo",
		testCustomer(),
		testCargo(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	estimate := testEstimate(t)

	planner := new(MockRoutePlanner)
	planner.On("EstimateRoute", ctx, cmd.Origin(), cmd.Destination()).Return(estimate, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockNotificationPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderAvailableEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, planner, services.NewPricingPolicy(), publisher, discardLogger())

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, order.Pending, created.Status())
	require.Equal(t, estimate.DistanceKm, created.Estimate().DistanceKm)
	// base 10 + 12.5km*2 + 2.5kg*1.5
	require.InDelta(t, 38.75, created.TotalPrice(), 1e-9)

	planner.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	planner := new(MockRoutePlanner)
	planner.On("EstimateRoute", ctx, cmd.Origin(), cmd.Destination()).Return(testEstimate(t), nil).Once()

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, planner, services.NewPricingPolicy(), publisher, discardLogger())

	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(
		factory, new(MockRoutePlanner), services.NewPricingPolicy(),
		new(MockNotificationPublisher), discardLogger())

	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	planner := new(MockRoutePlanner)
	planner.On("EstimateRoute", ctx, cmd.Origin(), cmd.Destination()).Return(testEstimate(t), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewCreateOrderCommandHandler(
		factory, planner, services.NewPricingPolicy(), publisher, discardLogger())

	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, created)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	origin := mustCoordinate(t, -23.5505, -46.6333)
	destination := mustCoordinate(t, -23.5614, -46.6560)

	_, err := commands.NewCreateOrderCommand(
		origin, destination, "", "Avenida Paulista, 1000", testCustomer(), testCargo())
	require.Error(t, err)

	customer := testCustomer()
	customer.Email = " "
	_, err = commands.NewCreateOrderCommand(
		origin, destination, "Rua Augusta, 100", "Avenida Paulista, 1000", customer, testCargo())
	require.Error(t, err)

	cargo := testCargo()
	cargo.Type = ""
	_, err = commands.NewCreateOrderCommand(
		origin, destination, "Rua Augusta, 100", "Avenida Paulista, 1000", testCustomer(), cargo)
	require.Error(t, err)
}
