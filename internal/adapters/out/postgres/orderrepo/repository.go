package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The full row is written;
// nullable columns use Select(*) so clearing a value is persisted too.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// TryClaim binds a driver to a pending, unclaimed order. The precondition
// check and the binding run as a single conditional UPDATE, so when several
// drivers race for the same order the database serializes them and exactly
// one row mutation succeeds.
//
// When the update affects no row the loser re-reads the order to classify
// the conflict: a bound driver means order.ErrAlreadyAssigned, a missing row
// means not found, anything else means order.ErrNotPending.
func (r *GormOrderRepository) TryClaim(ctx context.Context, id uuid.UUID, driverID int64) (*order.Order, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", id, order.Pending.String()).
		Updates(map[string]any{
			"driver_id":  driverID,
			"status":     order.Accepted.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 1 {
		aggregate, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		return aggregate, nil
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Driver() != nil {
		return nil, order.ErrAlreadyAssigned
	}
	return nil, order.ErrNotPending
}

// Delete removes an order row. Eligibility is the caller's concern; only
// existence is enforced here.
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}
