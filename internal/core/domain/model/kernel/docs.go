// Package kernel contains shared value objects used across the domain model.
//
// Coordinate is a validated geographic point (decimal degrees) used for order
// origins and destinations and for route estimation. Value objects in this
// package are immutable and enforce their invariants at construction time via
// the constructor-guard pattern.
package kernel
