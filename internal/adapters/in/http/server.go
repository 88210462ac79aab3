// Package http exposes the planner's operations over an Echo HTTP API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the planner API.
type Server struct {
	// Command handlers
	createRiderHandler   commands.CreateRiderCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	buildPlanHandler     commands.BuildPlanCommandHandler
	rejectOrderHandler   commands.RejectOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getPlanHandler      queries.GetPlanQueryHandler
	getAllRidersHandler queries.GetAllRidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRiderHandler commands.CreateRiderCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	buildPlanHandler commands.BuildPlanCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getPlanHandler queries.GetPlanQueryHandler,
	getAllRidersHandler queries.GetAllRidersQueryHandler,
) *Server {
	return &Server{
		createRiderHandler:   createRiderHandler,
		createOrderHandler:   createOrderHandler,
		buildPlanHandler:     buildPlanHandler,
		rejectOrderHandler:   rejectOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		completeOrderHandler: completeOrderHandler,
		getPlanHandler:       getPlanHandler,
		getAllRidersHandler:  getAllRidersHandler,
	}
}

// RegisterRoutes wires all API routes onto the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/riders", s.CreateRider)
	api.GET("/riders", s.GetRiders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/plan", s.BuildPlan)
	api.GET("/plan", s.GetPlan)
	api.POST("/plan/rejections", s.RejectOrder)
	api.POST("/plan/cancellations", s.CancelOrder)
	api.POST("/plan/completions", s.CompleteOrder)
}

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRiderRequest is the JSON body for rider registration.
type NewRiderRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewOrderRequest is the JSON body for order registration.
type NewOrderRequest struct {
	ID int64 `json:"id"`
}

// RejectionRequest is the JSON body for a rider rejecting an order.
type RejectionRequest struct {
	RiderID int64 `json:"rider_id"`
	OrderID int64 `json:"order_id"`
}

// OrderEventRequest is the JSON body for cancellations and completions.
type OrderEventRequest struct {
	OrderID int64 `json:"order_id"`
}

// RiderResponse is one rider in the riders listing.
type RiderResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Load int64  `json:"load"`
}

// PlanEntryResponse is one rider's sequence in the plan listing.
type PlanEntryResponse struct {
	RiderID  int64   `json:"rider_id"`
	OrderIDs []int64 `json:"order_ids"`
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var request NewRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.NewRiderID(request.ID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id: "+err.Error())
	}

	cmd, err := commands.NewCreateRiderCommand(riderID, request.Name)
	if err != nil {
		return badRequest(ctx, "Invalid rider data: "+err.Error())
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create rider",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetRiders handles GET /api/v1/riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	query := queries.NewGetAllRidersQuery()

	riders, err := s.getAllRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve riders")
	}

	response := make([]RiderResponse, len(riders))
	for i, r := range riders {
		response[i] = RiderResponse{
			ID:   r.ID,
			Name: r.Name,
			Load: r.Load,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(request.ID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// BuildPlan handles POST /api/v1/plan - rebuilds the plan from scratch.
func (s *Server) BuildPlan(ctx echo.Context) error {
	cmd := commands.NewBuildPlanCommand()

	err := s.buildPlanHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoRidersFound) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "No riders registered",
		})
	}
	if err != nil {
		return internalError(ctx, "Failed to build plan")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPlan handles GET /api/v1/plan.
func (s *Server) GetPlan(ctx echo.Context) error {
	query := queries.NewGetPlanQuery()

	entries, err := s.getPlanHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No plan built yet",
		})
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve plan")
	}

	response := make([]PlanEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = PlanEntryResponse{
			RiderID:  entry.RiderID,
			OrderIDs: entry.OrderIDs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RejectOrder handles POST /api/v1/plan/rejections.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var request RejectionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.NewRiderID(request.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider id: "+err.Error())
	}

	orderID, err := kernel.NewOrderID(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(riderID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid rejection: "+err.Error())
	}

	err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrPlanNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No plan built yet",
		})
	case errors.Is(err, services.ErrNoAlternateRider):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "No alternate rider available",
		})
	case err != nil:
		return internalError(ctx, "Failed to process rejection")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/plan/cancellations.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleOrderEvent(ctx, func(ctx echo.Context, orderID kernel.OrderID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/plan/completions.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.handleOrderEvent(ctx, func(ctx echo.Context, orderID kernel.OrderID) error {
		cmd, err := commands.NewCompleteOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// handleOrderEvent runs the shared request plumbing for cancellations and
// completions: both take an order id and map errors the same way.
func (s *Server) handleOrderEvent(ctx echo.Context, handle func(echo.Context, kernel.OrderID) error) error {
	var request OrderEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	err = handle(ctx, orderID)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order cannot transition: " + err.Error(),
		})
	case err != nil:
		return internalError(ctx, "Failed to process order event")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
