// Package http exposes the order lifecycle and admin operations over REST.
// Handlers translate between JSON payloads and application commands/queries;
// business rules live in the domain layer.
package http

import (
	"net/http"
	"strconv"
	"time"

	"refillstation/internal/core/application/usecases/commands"
	"refillstation/internal/core/application/usecases/queries"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	createWalkInHandler     commands.CreateWalkInOrderCommandHandler
	changeStatusHandler     commands.ChangeOrderStatusCommandHandler
	removeOrderHandler      commands.RemoveOrderCommandHandler
	setWebsiteStatusHandler commands.SetWebsiteStatusCommandHandler

	// Query handlers
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	monthlySalesHandler   queries.GetMonthlySalesQueryHandler
	topCustomersHandler   queries.GetTopCustomersQueryHandler
	websiteStatusHandler  queries.GetWebsiteStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createWalkInHandler commands.CreateWalkInOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	setWebsiteStatusHandler commands.SetWebsiteStatusCommandHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	monthlySalesHandler queries.GetMonthlySalesQueryHandler,
	topCustomersHandler queries.GetTopCustomersQueryHandler,
	websiteStatusHandler queries.GetWebsiteStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		createWalkInHandler:     createWalkInHandler,
		changeStatusHandler:     changeStatusHandler,
		removeOrderHandler:      removeOrderHandler,
		setWebsiteStatusHandler: setWebsiteStatusHandler,
		customerOrdersHandler:   customerOrdersHandler,
		listOrdersHandler:       listOrdersHandler,
		monthlySalesHandler:     monthlySalesHandler,
		topCustomersHandler:     topCustomersHandler,
		websiteStatusHandler:    websiteStatusHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Customer-facing
// routes live under /api, staff routes under /api/admin.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetCustomerOrders)
	api.PUT("/orders/:id/cancel", s.CancelOrder)

	admin := api.Group("/admin")
	admin.POST("/walkin", s.CreateWalkInOrder)
	admin.GET("/orders", s.ListOrders)
	admin.PUT("/orders/:id", s.UpdateOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)
	admin.GET("/sales/monthly", s.GetMonthlySales)
	admin.GET("/customers/top", s.GetTopCustomers)
	admin.GET("/website-status", s.GetWebsiteStatus)
	admin.PUT("/website-status", s.SetWebsiteStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - places a self-service order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customerId")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		req.CustomerName,
		req.Phone,
		req.Address,
		req.HasContainer,
		req.Delivery,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetCustomerOrders handles GET /api/orders?customerId= - the customer's
// order history, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customerId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid customerId parameter")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = orderResponseFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PUT /api/orders/:id/cancel - a customer cancelling
// their own Pending order within the cancellation window.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Cancelled, order.ActorCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// CreateWalkInOrder handles POST /api/admin/walkin - staff recording an
// in-person transaction.
func (s *Server) CreateWalkInOrder(ctx echo.Context) error {
	var req CreateWalkInOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWalkInOrderCommand(
		kernel.NewUUID(),
		req.CustomerName,
		req.Phone,
		req.Address,
		req.HasContainer,
		req.Delivery,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createWalkInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// ListOrders handles GET /api/admin/orders - the admin dashboard listing with
// optional status, delivery, search and sortBy query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	var deliveryFilter *bool
	if raw := ctx.QueryParam("delivery"); raw != "" {
		delivery, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid delivery parameter")
		}
		deliveryFilter = &delivery
	}

	query, err := queries.NewListOrdersQuery(
		statusFilter,
		deliveryFilter,
		ctx.QueryParam("search"),
		ctx.QueryParam("sortBy"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = orderResponseFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id - staff moving an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, order.ActorStaff)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/admin/orders/:id - staff permanently
// removing an order record.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, order.ActorStaff)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMonthlySales handles GET /api/admin/sales/monthly?year=&month= - the
// delivered-order revenue report. Missing parameters default to the current
// month.
func (s *Server) GetMonthlySales(ctx echo.Context) error {
	now := time.Now().UTC()

	year := now.Year()
	if raw := ctx.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid year parameter")
		}
		year = parsed
	}

	month := now.Month()
	if raw := ctx.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid month parameter")
		}
		month = time.Month(parsed)
	}

	query, err := queries.NewGetMonthlySalesQuery(year, month)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.monthlySalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MonthlySalesResponse{
		Year:       report.Year,
		Month:      report.Month.String(),
		TotalSales: report.TotalSales,
		OrderCount: report.OrderCount,
	})
}

// GetTopCustomers handles GET /api/admin/customers/top?limit= - customers
// ranked by total spend on delivered orders.
func (s *Server) GetTopCustomers(ctx echo.Context) error {
	limit := 10
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid limit parameter")
		}
		limit = parsed
	}

	query, err := queries.NewGetTopCustomersQuery(limit)
	if err != nil {
		return respondError(ctx, err)
	}

	customers, err := s.topCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TopCustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = TopCustomerResponse{
			CustomerID:   c.CustomerID.String(),
			CustomerName: c.CustomerName,
			TotalSpent:   c.TotalSpent,
			OrderCount:   c.OrderCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWebsiteStatus handles GET /api/admin/website-status.
func (s *Server) GetWebsiteStatus(ctx echo.Context) error {
	status, err := s.websiteStatusHandler.Handle(ctx.Request().Context(), queries.NewGetWebsiteStatusQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WebsiteStatusResponse{
		Enabled:   status.Enabled,
		Reason:    status.Reason,
		UpdatedAt: status.UpdatedAt,
	})
}

// SetWebsiteStatus handles PUT /api/admin/website-status - staff toggling
// self-service order intake.
func (s *Server) SetWebsiteStatus(ctx echo.Context) error {
	var req SetWebsiteStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetWebsiteStatusCommand(req.Enabled, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	gate, err := s.setWebsiteStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WebsiteStatusResponse{
		Enabled:   gate.Enabled(),
		Reason:    gate.Reason(),
		UpdatedAt: gate.UpdatedAt(),
	})
}
