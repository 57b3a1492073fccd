package queries

import (
	"context"

	"pedidos/internal/core/domain/model/route"
	"pedidos/internal/core/ports"
)

// EstimateRouteQueryHandler answers standalone estimate requests through the
// route planner port. The planner's fallback guarantees make this read
// always succeed for valid coordinates.
type EstimateRouteQueryHandler struct {
	routePlanner ports.RoutePlanner
}

// NewEstimateRouteQueryHandler creates a handler for estimate reads.
func NewEstimateRouteQueryHandler(routePlanner ports.RoutePlanner) EstimateRouteQueryHandler {
	return EstimateRouteQueryHandler{routePlanner: routePlanner}
}

// Handle returns the estimate for the requested trip.
func (h EstimateRouteQueryHandler) Handle(
	ctx context.Context,
	query EstimateRouteQuery,
) (route.Estimate, error) {
	if err := query.Validate(); err != nil {
		return route.Estimate{}, err
	}

	return h.routePlanner.EstimateRoute(ctx, query.Origin(), query.Destination())
}
