package order

import (
	"errors"
	"fmt"

	"pedidos/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change does
// not match an allowed edge of the lifecycle.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// The success chain is strictly forward:
//
//	Pending ──> Accepted ──> InTransit ──> OutForDelivery ──> Delivered
//
// Forward jumps along the chain are allowed (e.g. InTransit -> Delivered).
// Cancelled and Failed are terminal failure states reachable from any
// non-terminal state. Delivered, Cancelled and Failed accept no further
// transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is waiting to be claimed.
	Pending

	// Accepted means a driver has claimed the order.
	Accepted

	// InTransit means the driver has picked up the cargo.
	InTransit

	// OutForDelivery means the driver is approaching the destination.
	OutForDelivery

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is a terminal failure state requested by a caller.
	Cancelled

	// Failed is a terminal failure state for undeliverable orders.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
		Failed:         "FAILED",
	}
}

// successChainRank orders the states of the success chain. Terminal failure
// states are not part of the chain.
func successChainRank() map[Status]int {
	return map[Status]int{
		Pending:        0,
		Accepted:       1,
		InTransit:      2,
		OutForDelivery: 3,
		Delivered:      4,
	}
}

// ParseStatus converts the wire/database representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation (e.g. "OUT_FOR_DELIVERY").
// It implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// TransitionTo validates the edge from s to target and returns target.
//
// Allowed edges:
//   - any strictly forward move along the success chain
//   - Cancelled or Failed from any non-terminal state
//
// Everything else, including re-entering the current state, fails with
// ErrInvalidStatusTransition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidStatusTransition, s)
	}

	if target == Cancelled || target == Failed {
		return target, nil
	}

	ranks := successChainRank()
	from, fromOK := ranks[s]
	to, toOK := ranks[target]
	if !fromOK || !toOK || to <= from {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
