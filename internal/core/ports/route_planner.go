package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/route"
)

// RoutePlanner estimates the trip between two coordinates.
//
// Implementations must always return a usable estimate for valid
// coordinates: when the external routing provider is unavailable they fall
// back to a deterministic geometric estimate instead of propagating the
// provider failure.
type RoutePlanner interface {
	EstimateRoute(ctx context.Context, origin, destination kernel.Coordinate) (route.Estimate, error)
}
