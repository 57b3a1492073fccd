package http

import (
	"time"

	"github.com/google/uuid"

	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/route"
)

// CoordinatePayload is a latitude/longitude pair on the wire.
type CoordinatePayload struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// CreateOrderRequest is the POST /orders payload.
type CreateOrderRequest struct {
	Origin             CoordinatePayload `json:"origin" validate:"required"`
	Destination        CoordinatePayload `json:"destination" validate:"required"`
	OriginAddress      string            `json:"originAddress" validate:"required"`
	DestinationAddress string            `json:"destinationAddress" validate:"required"`

	CustomerID    *int64 `json:"customerId" validate:"omitempty,gt=0"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone"`

	CargoType           string   `json:"cargoType" validate:"required"`
	CargoWeight         *float64 `json:"cargoWeight" validate:"omitempty,gte=0"`
	CargoDimensions     string   `json:"cargoDimensions"`
	SpecialInstructions string   `json:"specialInstructions"`
}

// ClaimOrderRequest is the POST /orders/:id/claim payload.
type ClaimOrderRequest struct {
	DriverID int64 `json:"driverId" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the PATCH /orders/:id/status payload.
// Optional fields are applied only when present.
type UpdateOrderStatusRequest struct {
	Status            string  `json:"status" validate:"required"`
	DriverID          *int64  `json:"driverId" validate:"omitempty,gt=0"`
	DeliveryPhotoURL  *string `json:"deliveryPhotoUrl"`
	DeliverySignature *string `json:"deliverySignature"`
}

// EstimateRouteRequest is the POST /routes/estimate payload.
type EstimateRouteRequest struct {
	Origin      CoordinatePayload `json:"origin" validate:"required"`
	Destination CoordinatePayload `json:"destination" validate:"required"`
}

// OrderResponse is the JSON rendering of an order.
type OrderResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Origin             CoordinatePayload `json:"origin"`
	Destination        CoordinatePayload `json:"destination"`
	OriginAddress      string            `json:"originAddress"`
	DestinationAddress string            `json:"destinationAddress"`

	CustomerID    *int64 `json:"customerId,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	CargoType           string   `json:"cargoType"`
	CargoWeight         *float64 `json:"cargoWeight,omitempty"`
	CargoDimensions     string   `json:"cargoDimensions,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`

	DriverID *int64 `json:"driverId,omitempty"`
	Status   string `json:"status"`

	EstimatedDistanceKm      float64 `json:"estimatedDistanceKm"`
	EstimatedDurationMinutes int     `json:"estimatedDurationMinutes"`
	TotalPrice               float64 `json:"totalPrice"`

	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`
	DeliveryPhotoURL  string     `json:"deliveryPhotoUrl,omitempty"`
	DeliverySignature string     `json:"deliverySignature,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EstimateResponse is the JSON rendering of a route estimate.
type EstimateResponse struct {
	DistanceKm      float64             `json:"distanceKm"`
	DurationMinutes int                 `json:"durationMinutes"`
	Path            []CoordinatePayload `json:"path"`
	Instructions    []string            `json:"instructions"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func coordinateToPayload(c kernel.Coordinate) CoordinatePayload {
	return CoordinatePayload{Lat: c.Latitude(), Lon: c.Longitude()}
}

func orderToResponse(o *order.Order) OrderResponse {
	customer := o.Customer()
	cargo := o.Cargo()

	return OrderResponse{
		ID:                 o.ID(),
		Origin:             coordinateToPayload(o.Origin()),
		Destination:        coordinateToPayload(o.Destination()),
		OriginAddress:      o.OriginAddress(),
		DestinationAddress: o.DestinationAddress(),

		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,

		CargoType:           cargo.Type,
		CargoWeight:         cargo.Weight,
		CargoDimensions:     cargo.Dimensions,
		SpecialInstructions: cargo.SpecialInstructions,

		DriverID: o.Driver(),
		Status:   o.Status().String(),

		EstimatedDistanceKm:      o.Estimate().DistanceKm,
		EstimatedDurationMinutes: o.Estimate().DurationMinutes,
		TotalPrice:               o.TotalPrice(),

		DeliveredAt:       o.DeliveredAt(),
		DeliveryPhotoURL:  o.DeliveryPhotoURL(),
		DeliverySignature: o.DeliverySignature(),

		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func viewToResponse(v queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:                 v.ID,
		Origin:             coordinateToPayload(v.Origin),
		Destination:        coordinateToPayload(v.Destination),
		OriginAddress:      v.OriginAddress,
		DestinationAddress: v.DestinationAddress,

		CustomerID:    v.Customer.ID,
		CustomerName:  v.Customer.Name,
		CustomerEmail: v.Customer.Email,
		CustomerPhone: v.Customer.Phone,

		CargoType:           v.Cargo.Type,
		CargoWeight:         v.Cargo.Weight,
		CargoDimensions:     v.Cargo.Dimensions,
		SpecialInstructions: v.Cargo.SpecialInstructions,

		DriverID: v.DriverID,
		Status:   v.Status.String(),

		EstimatedDistanceKm:      v.EstimatedDistanceKm,
		EstimatedDurationMinutes: v.EstimatedDurationMinutes,
		TotalPrice:               v.TotalPrice,

		DeliveredAt:       v.DeliveredAt,
		DeliveryPhotoURL:  v.DeliveryPhotoURL,
		DeliverySignature: v.DeliverySignature,

		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func viewsToResponses(views []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, v := range views {
		responses[i] = viewToResponse(v)
	}
	return responses
}

func estimateToResponse(e route.Estimate) EstimateResponse {
	path := make([]CoordinatePayload, len(e.Path))
	for i, point := range e.Path {
		path[i] = coordinateToPayload(point)
	}

	return EstimateResponse{
		DistanceKm:      e.DistanceKm,
		DurationMinutes: e.DurationMinutes,
		Path:            path,
		Instructions:    e.Instructions,
	}
}
