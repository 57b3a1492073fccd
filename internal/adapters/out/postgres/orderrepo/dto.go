// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, including the atomic claim that arbitrates concurrent drivers.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/route"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string so the table is readable and the query
// side can filter without knowing the enum encoding.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	OriginLat          float64
	OriginLon          float64
	DestinationLat     float64
	DestinationLon     float64
	OriginAddress      string
	DestinationAddress string

	CustomerID    *int64 `gorm:"index"`
	CustomerName  string
	CustomerEmail string `gorm:"index"`
	CustomerPhone string

	CargoType           string
	CargoWeight         *float64
	CargoDimensions     string
	SpecialInstructions string

	DriverID *int64 `gorm:"index"`
	Status   string `gorm:"type:varchar(32);index"`

	EstimatedDistanceKm      float64
	EstimatedDurationMinutes int
	TotalPrice               float64

	DeliveredAt       *time.Time
	DeliveryPhotoURL  string
	DeliverySignature string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()
	cargo := aggregate.Cargo()

	return OrderDTO{
		ID: aggregate.ID(),

		OriginLat:          aggregate.Origin().Latitude(),
		OriginLon:          aggregate.Origin().Longitude(),
		DestinationLat:     aggregate.Destination().Latitude(),
		DestinationLon:     aggregate.Destination().Longitude(),
		OriginAddress:      aggregate.OriginAddress(),
		DestinationAddress: aggregate.DestinationAddress(),

		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,

		CargoType:           cargo.Type,
		CargoWeight:         cargo.Weight,
		CargoDimensions:     cargo.Dimensions,
		SpecialInstructions: cargo.SpecialInstructions,

		DriverID: aggregate.Driver(),
		Status:   aggregate.Status().String(),

		EstimatedDistanceKm:      aggregate.Estimate().DistanceKm,
		EstimatedDurationMinutes: aggregate.Estimate().DurationMinutes,
		TotalPrice:               aggregate.TotalPrice(),

		DeliveredAt:       aggregate.DeliveredAt(),
		DeliveryPhotoURL:  aggregate.DeliveryPhotoURL(),
		DeliverySignature: aggregate.DeliverySignature(),

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so the persisted
// state passes through the same invariant checks as fresh orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	origin, err := kernel.NewCoordinate(dto.OriginLat, dto.OriginLon)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCoordinate(dto.DestinationLat, dto.DestinationLon)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 dto.ID,
		Origin:             origin,
		Destination:        destination,
		OriginAddress:      dto.OriginAddress,
		DestinationAddress: dto.DestinationAddress,
		Customer: order.Customer{
			ID:    dto.CustomerID,
			Name:  dto.CustomerName,
			Email: dto.CustomerEmail,
			Phone: dto.CustomerPhone,
		},
		Cargo: order.Cargo{
			Type:                dto.CargoType,
			Weight:              dto.CargoWeight,
			Dimensions:          dto.CargoDimensions,
			SpecialInstructions: dto.SpecialInstructions,
		},
		Estimate: route.Estimate{
			DistanceKm:      dto.EstimatedDistanceKm,
			DurationMinutes: dto.EstimatedDurationMinutes,
		},
		TotalPrice:        dto.TotalPrice,
		Status:            status,
		DriverID:          dto.DriverID,
		DeliveredAt:       dto.DeliveredAt,
		DeliveryPhotoURL:  dto.DeliveryPhotoURL,
		DeliverySignature: dto.DeliverySignature,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	})
}
