package commands_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(uuid.Nil, order.Accepted, nil, nil, nil)
	require.Error(t, err)

	_, err = commands.NewUpdateOrderStatusCommand(uuid.New(), order.Unknown, nil, nil, nil)
	require.Error(t, err)

	badDriver := int64(0)
	_, err = commands.NewUpdateOrderStatusCommand(uuid.New(), order.Accepted, &badDriver, nil, nil)
	require.Error(t, err)

	cmd, err := commands.NewUpdateOrderStatusCommand(uuid.New(), order.Cancelled, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, order.Cancelled, cmd.Target())
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredEmitsCompletion(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	require.NoError(t, aggregate.AssignDriver(42))
	require.NoError(t, aggregate.TransitionTo(order.Accepted))
	require.NoError(t, aggregate.TransitionTo(order.InTransit))

	photo := "https://cdn.example.com/proof/abc.jpg"
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Delivered, nil, &photo, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockNotificationPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderCompletedEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Delivered, got.Status())
	require.NotNil(t, got.DeliveredAt())
	require.Equal(t, photo, got.DeliveryPhotoURL())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)
	require.NoError(t, aggregate.AssignDriver(42))
	require.NoError(t, aggregate.TransitionTo(order.Accepted))

	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Pending, nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	require.Nil(t, got)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_NonDeliveredDoesNotPublish(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)

	driverID := int64(42)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Accepted, &driverID, nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Accepted, got.Status())
	require.Equal(t, driverID, *got.Driver())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
