package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/route"
)

func mustCoordinate(t *testing.T, lat, lon float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func TestNewGetOrderQuery(t *testing.T) {
	_, err := queries.NewGetOrderQuery(uuid.Nil)
	require.Error(t, err)

	q, err := queries.NewGetOrderQuery(uuid.New())
	require.NoError(t, err)
	require.NoError(t, q.Validate())

	var zero queries.GetOrderQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersByCustomerQuery(t *testing.T) {
	_, err := queries.NewGetOrdersByCustomerQuery("  ")
	require.Error(t, err)

	q, err := queries.NewGetOrdersByCustomerQuery("maria@example.com")
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, "maria@example.com", q.CustomerEmail())
}

func TestNewGetOrdersByDriverQuery(t *testing.T) {
	_, err := queries.NewGetOrdersByDriverQuery(0)
	require.Error(t, err)

	q, err := queries.NewGetOrdersByDriverQuery(42)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetOrdersByStatusQuery(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)
	require.Error(t, err)

	q, err := queries.NewGetOrdersByStatusQuery(order.InTransit)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, order.InTransit, q.Status())
}

func TestNewGetAvailableOrdersQuery(t *testing.T) {
	q := queries.NewGetAvailableOrdersQuery()
	require.NoError(t, q.Validate())

	var zero queries.GetAvailableOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

type MockRoutePlanner struct{ mock.Mock }

func (m *MockRoutePlanner) EstimateRoute(
	ctx context.Context,
	origin, destination kernel.Coordinate,
) (route.Estimate, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(route.Estimate), args.Error(1)
}

func TestEstimateRouteQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	origin := mustCoordinate(t, -23.5505, -46.6333)
	destination := mustCoordinate(t, -23.5614, -46.6560)

	q, err := queries.NewEstimateRouteQuery(origin, destination)
	require.NoError(t, err)

	want := route.Estimate{DistanceKm: 2.9, DurationMinutes: 7}
	planner := new(MockRoutePlanner)
	planner.On("EstimateRoute", ctx, origin, destination).Return(want, nil).Once()

	h := queries.NewEstimateRouteQueryHandler(planner)
	got, err := h.Handle(ctx, q)
	require.NoError(t, err)
	require.Equal(t, want, got)
	planner.AssertExpectations(t)

	var zero queries.EstimateRouteQuery
	_, err = h.Handle(ctx, zero)
	require.ErrorIs(t, err, queries.ErrEstimateRouteQueryIsNotConstructed)
}
