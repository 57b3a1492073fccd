// Package route contains the route estimate value produced when an order is
// created or when a caller asks for a standalone estimate. An Estimate is
// immutable planning data computed from two coordinates; it carries no side
// effects and is never recomputed after order creation.
package route

import "pedidos/internal/core/domain/model/kernel"

// Estimate describes the planned trip between an origin and a destination.
type Estimate struct {
	// DistanceKm is the driving (or great-circle fallback) distance in kilometers.
	DistanceKm float64

	// DurationMinutes is the estimated travel time in whole minutes.
	DurationMinutes int

	// Path is the sequence of points describing the route geometry. The
	// fallback path holds exactly the origin and the destination.
	Path []kernel.Coordinate

	// Instructions are human-readable turn-by-turn steps.
	Instructions []string
}
