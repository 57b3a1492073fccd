// Package order provides the delivery order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root holding geography, customer and cargo data,
//     the route estimate and price fixed at creation, driver assignment, and
//     delivery proof
//   - Status: the state machine enforcing the allowed lifecycle transitions
//
// Key business rules:
//   - orders are created Pending with no driver bound
//   - a driver is bound exclusively through the store's atomic claim; losing
//     claimers observe ErrAlreadyAssigned or ErrNotPending, never success
//   - status moves strictly forward along the success chain, with Cancelled
//     and Failed reachable from any non-terminal state
//   - deliveredAt is stamped exactly once, when the order becomes Delivered
//   - only pending, unclaimed orders may be deleted
package order
