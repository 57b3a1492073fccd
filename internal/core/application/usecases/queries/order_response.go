// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read the database directly and return read models optimized for
// presentation; they never go through the write-side repositories.
package queries

import (
	"time"

	"github.com/google/uuid"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderResponse is the read model shared by the order queries.
type OrderResponse struct {
	ID                 uuid.UUID
	Origin             kernel.Coordinate
	Destination        kernel.Coordinate
	OriginAddress      string
	DestinationAddress string
	Customer           order.Customer
	Cargo              order.Cargo
	DriverID           *int64
	Status             order.Status

	EstimatedDistanceKm      float64
	EstimatedDurationMinutes int
	TotalPrice               float64

	DeliveredAt       *time.Time
	DeliveryPhotoURL  string
	DeliverySignature string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// orderSelectColumns is the projection shared by the order queries. Column
// names follow the orders table schema owned by the postgres adapter.
const orderSelectColumns = `
	SELECT
		id,
		origin_lat, origin_lon, destination_lat, destination_lon,
		origin_address, destination_address,
		customer_id, customer_name, customer_email, customer_phone,
		cargo_type, cargo_weight, cargo_dimensions, special_instructions,
		driver_id, status,
		estimated_distance_km, estimated_duration_minutes, total_price,
		delivered_at, delivery_photo_url, delivery_signature,
		created_at, updated_at
	FROM orders
`

// orderRow mirrors the orders table for scanning; gorm maps the snake_case
// columns onto these fields by name.
type orderRow struct {
	ID                  uuid.UUID
	OriginLat           float64
	OriginLon           float64
	DestinationLat      float64
	DestinationLon      float64
	OriginAddress       string
	DestinationAddress  string
	CustomerID          *int64
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	CargoType           string
	CargoWeight         *float64
	CargoDimensions     string
	SpecialInstructions string
	DriverID            *int64
	Status              string

	EstimatedDistanceKm      float64
	EstimatedDurationMinutes int
	TotalPrice               float64

	DeliveredAt       *time.Time
	DeliveryPhotoURL  string
	DeliverySignature string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r orderRow) toResponse() (OrderResponse, error) {
	origin, err := kernel.NewCoordinate(r.OriginLat, r.OriginLon)
	if err != nil {
		return OrderResponse{}, err
	}

	destination, err := kernel.NewCoordinate(r.DestinationLat, r.DestinationLon)
	if err != nil {
		return OrderResponse{}, err
	}

	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:                 r.ID,
		Origin:             origin,
		Destination:        destination,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		Customer: order.Customer{
			ID:    r.CustomerID,
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
			Phone: r.CustomerPhone,
		},
		Cargo: order.Cargo{
			Type:                r.CargoType,
			Weight:              r.CargoWeight,
			Dimensions:          r.CargoDimensions,
			SpecialInstructions: r.SpecialInstructions,
		},
		DriverID:                 r.DriverID,
		Status:                   status,
		EstimatedDistanceKm:      r.EstimatedDistanceKm,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		TotalPrice:               r.TotalPrice,
		DeliveredAt:              r.DeliveredAt,
		DeliveryPhotoURL:         r.DeliveryPhotoURL,
		DeliverySignature:        r.DeliverySignature,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}, nil
}

func rowsToResponses(rows []orderRow) ([]OrderResponse, error) {
	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}
