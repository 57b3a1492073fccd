package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/route"
	"pedidos/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) TryClaim(ctx context.Context, id uuid.UUID, driverID int64) (*order.Order, error) {
	args := m.Called(ctx, id, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRoutePlanner struct{ mock.Mock }

func (m *MockRoutePlanner) EstimateRoute(
	ctx context.Context,
	origin, destination kernel.Coordinate,
) (route.Estimate, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(route.Estimate), args.Error(1)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCoordinate(t *testing.T, lat, lon float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func testCustomer() order.Customer {
	id := int64(7)
	return order.Customer{
		ID:    &id,
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: "+55 11 91234-5678",
	}
}

func testCargo() order.Cargo {
	weight := 2.5
	return order.Cargo{Type: "documents", Weight: &weight}
}

func testEstimate(t *testing.T) route.Estimate {
	t.Helper()
	return route.Estimate{
		DistanceKm:      12.5,
		DurationMinutes: 31,
		Path: []kernel.Coordinate{
			mustCoordinate(t, -23.5505, -46.6333),
			mustCoordinate(t, -23.5614, -46.6560),
		},
	}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		uuid.New(),
		mustCoordinate(t, -23.5505, -46.6333),
		mustCoordinate(t, -23.5614, -46.6560),
		"Rua Augusta, 100, São Paulo",
		"Avenida Paulista, 1000, São Paulo",
		testCustomer(),
		testCargo(),
		testEstimate(t),
		38.75,
	)
	require.NoError(t, err)
	return o
}
