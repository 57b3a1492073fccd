// Package http exposes the order lifecycle over a REST API built on echo.
// The server translates between wire payloads and the application's command
// and query handlers; no business rules live here.
package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	claimOrderHandler        commands.ClaimOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getOrdersByDriverHandler   queries.GetOrdersByDriverQueryHandler
	getOrdersByStatusHandler   queries.GetOrdersByStatusQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	estimateRouteHandler       queries.EstimateRouteQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getOrdersByDriverHandler queries.GetOrdersByDriverQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	estimateRouteHandler queries.EstimateRouteQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getOrdersByDriverHandler:   getOrdersByDriverHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		getAvailableOrdersHandler:  getAvailableOrdersHandler,
		estimateRouteHandler:       estimateRouteHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/customer/:email", s.GetOrdersByCustomer)
	api.GET("/orders/driver/:driverId", s.GetOrdersByDriver)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.POST("/routes/estimate", s.EstimateRoute)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	origin, err := kernel.NewCoordinate(req.Origin.Lat, req.Origin.Lon)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := kernel.NewCoordinate(req.Destination.Lat, req.Destination.Lon)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		origin, destination,
		req.OriginAddress, req.DestinationAddress,
		order.Customer{
			ID:    req.CustomerID,
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		order.Cargo{
			Type:                req.CargoType,
			Weight:              req.CargoWeight,
			Dimensions:          req.CargoDimensions,
			SpecialInstructions: req.SpecialInstructions,
		},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewToResponse(view))
}

// GetOrdersByCustomer handles GET /api/v1/orders/customer/:email.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerQuery(ctx.Param("email"))
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponses(views))
}

// GetOrdersByDriver handles GET /api/v1/orders/driver/:driverId.
func (s *Server) GetOrdersByDriver(ctx echo.Context) error {
	driverID, err := strconv.ParseInt(ctx.Param("driverId"), 10, 64)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	query, err := queries.NewGetOrdersByDriverQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponses(views))
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.ParseStatus(ctx.Param("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponses(views))
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	views, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, viewsToResponses(views))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ClaimOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(id, req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		id, target, req.DriverID, req.DeliveryPhotoURL, req.DeliverySignature)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EstimateRoute handles POST /api/v1/routes/estimate.
func (s *Server) EstimateRoute(ctx echo.Context) error {
	var req EstimateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	origin, err := kernel.NewCoordinate(req.Origin.Lat, req.Origin.Lon)
	if err != nil {
		return writeError(ctx, err)
	}
	destination, err := kernel.NewCoordinate(req.Destination.Lat, req.Destination.Lon)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewEstimateRouteQuery(origin, destination)
	if err != nil {
		return writeError(ctx, err)
	}

	estimate, err := s.estimateRouteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, estimateToResponse(estimate))
}

func parseOrderID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}
