package queries

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrEstimateRouteQueryIsNotConstructed = errors.New(
	"EstimateRouteQuery must be created via NewEstimateRouteQuery constructor",
)

// EstimateRouteQuery requests a standalone route estimate between two
// coordinates, without creating an order.
type EstimateRouteQuery struct {
	origin      kernel.Coordinate
	destination kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewEstimateRouteQuery creates an estimate query for the given coordinates.
func NewEstimateRouteQuery(origin, destination kernel.Coordinate) (EstimateRouteQuery, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return EstimateRouteQuery{}, err
	}

	return EstimateRouteQuery{
		origin:      origin,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimateRouteQuery) Validate() error {
	return q.guard.Validate(ErrEstimateRouteQueryIsNotConstructed)
}

// Origin returns the trip start coordinate.
func (q EstimateRouteQuery) Origin() kernel.Coordinate {
	return q.origin
}

// Destination returns the trip end coordinate.
func (q EstimateRouteQuery) Destination() kernel.Coordinate {
	return q.destination
}
