package ports

import (
	"context"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// List-style reads are served by the query handlers directly; the repository
// only covers the operations the write side needs.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)

	// TryClaim atomically binds a driver to a pending, unclaimed order and
	// moves it to Accepted. The check and the mutation execute as one unit
	// in storage, so under concurrent claims exactly one caller succeeds.
	//
	// Losers observe order.ErrAlreadyAssigned when a driver is already
	// bound, order.ErrNotPending when the order left the pending state
	// without one, or errs.ObjectNotFoundError when the order is missing.
	TryClaim(ctx context.Context, id uuid.UUID, driverID int64) (*order.Order, error)

	// Delete removes an order. Callers must check deletion eligibility on
	// the aggregate first; the repository only enforces existence.
	Delete(ctx context.Context, id uuid.UUID) error
}
