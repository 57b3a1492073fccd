package commands_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/order"
)

func TestNewClaimOrderCommand(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(uuid.Nil, 42)
	require.Error(t, err)

	_, err = commands.NewClaimOrderCommand(uuid.New(), 0)
	require.Error(t, err)

	cmd, err := commands.NewClaimOrderCommand(uuid.New(), 42)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, int64(42), cmd.DriverID())
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	claimed := testOrder(t)
	require.NoError(t, claimed.AssignDriver(42))
	require.NoError(t, claimed.TransitionTo(order.Accepted))

	cmd, err := commands.NewClaimOrderCommand(claimed.ID(), 42)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockNotificationPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("TryClaim", mock.Anything, claimed.ID(), int64(42)).Return(claimed, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderPickedUpEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory, publisher, discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, got.IsEqual(claimed))
	require.Equal(t, order.Accepted, got.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	orderID := uuid.New()
	cmd, err := commands.NewClaimOrderCommand(orderID, 43)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("TryClaim", mock.Anything, orderID, int64(43)).Return(nil, order.ErrAlreadyAssigned).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewClaimOrderCommandHandler(factory, publisher, discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	require.Nil(t, got)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ClaimOrderCommand{} // not constructed properly

	h := commands.NewClaimOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockNotificationPublisher), discardLogger())

	got, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Nil(t, got)
}
