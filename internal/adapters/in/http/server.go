package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// parsePaging reads the optional page and size query parameters.
// Absent parameters fall back to zero so the query layer applies defaults.
func parsePaging(ctx echo.Context) (int, int, map[string]string) {
	fieldErrors := make(map[string]string)

	page := 0
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors["page"] = "Page must be a number"
		} else {
			page = parsed
		}
	}

	size := 0
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrors["size"] = "Size must be a number"
		} else {
			size = parsed
		}
	}

	return page, size, fieldErrors
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersByCustomerHandler  queries.GetOrdersByCustomerQueryHandler
	getOrdersByMerchantHandler  queries.GetOrdersByMerchantQueryHandler
	getDailyOrderCountHandler   queries.GetDailyOrderCountQueryHandler

	logger    *slog.Logger
	startedAt time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getOrdersByMerchantHandler queries.GetOrdersByMerchantQueryHandler,
	getDailyOrderCountHandler queries.GetDailyOrderCountQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,

		getOrderHandler:            getOrderHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getOrdersByMerchantHandler: getOrdersByMerchantHandler,
		getDailyOrderCountHandler:  getDailyOrderCountHandler,

		logger:    logger.With("component", "http_server"),
		startedAt: time.Now(),
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	orders := e.Group("/api/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("/stats/daily-count", s.GetDailyOrderCount)
	orders.GET("/customer/:customerId", s.GetOrdersByCustomer)
	orders.GET("/merchant/:merchantId", s.GetOrdersByMerchant)
	orders.GET("/:orderNumber", s.GetOrder)
	orders.PUT("/:orderNumber/status", s.UpdateOrderStatus)
	orders.PUT("/:orderNumber/cancel", s.CancelOrder)

	webhooks := e.Group("/api/webhooks")
	webhooks.POST("/payment-status", s.HandlePaymentStatusWebhook)
	webhooks.POST("/delivery-status", s.HandleDeliveryStatusWebhook)

	e.GET("/actuator/health", s.Health)
	e.GET("/actuator/metrics", s.Metrics)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return validationFailed(ctx, map[string]string{"body": "Invalid request body"})
	}

	if fieldErrors := request.fieldErrors(); len(fieldErrors) > 0 {
		return validationFailed(ctx, fieldErrors)
	}

	cmd, err := request.toCommand()
	if err != nil {
		return translateError(ctx, err)
	}

	newOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(newOrder))
}

// GetOrder handles GET /api/orders/:orderNumber.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderNumber"))
	if err != nil {
		return translateError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByCustomer handles GET /api/orders/customer/:customerId with
// optional page and size query parameters.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := strconv.ParseInt(ctx.Param("customerId"), 10, 64)
	if err != nil {
		return validationFailed(ctx, map[string]string{"customerId": "Customer ID must be a number"})
	}

	page, size, pageErrors := parsePaging(ctx)
	if len(pageErrors) > 0 {
		return validationFailed(ctx, pageErrors)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID, page, size)
	if err != nil {
		return translateError(ctx, err)
	}

	response, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByMerchant handles GET /api/orders/merchant/:merchantId with
// optional page and size query parameters.
func (s *Server) GetOrdersByMerchant(ctx echo.Context) error {
	merchantID, err := strconv.ParseInt(ctx.Param("merchantId"), 10, 64)
	if err != nil {
		return validationFailed(ctx, map[string]string{"merchantId": "Merchant ID must be a number"})
	}

	page, size, pageErrors := parsePaging(ctx)
	if len(pageErrors) > 0 {
		return validationFailed(ctx, pageErrors)
	}

	query, err := queries.NewGetOrdersByMerchantQuery(merchantID, page, size)
	if err != nil {
		return translateError(ctx, err)
	}

	response, err := s.getOrdersByMerchantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:orderNumber/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return validationFailed(ctx, map[string]string{"body": "Invalid request body"})
	}

	if fieldErrors := request.fieldErrors(); len(fieldErrors) > 0 {
		return validationFailed(ctx, fieldErrors)
	}

	newStatus, err := order.StatusFromName(request.NewStatus)
	if err != nil {
		return translateError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(ctx.Param("orderNumber"), newStatus, request.Reason)
	if err != nil {
		return translateError(ctx, err)
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatusUpdateResponse(result))
}

// CancelOrder handles PUT /api/orders/:orderNumber/cancel with an optional
// reason query parameter.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("orderNumber"), ctx.QueryParam("reason"))
	if err != nil {
		return translateError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatusUpdateResponse(result))
}

// GetDailyOrderCount handles GET /api/orders/stats/daily-count.
func (s *Server) GetDailyOrderCount(ctx echo.Context) error {
	count, err := s.getDailyOrderCountHandler.Handle(
		ctx.Request().Context(), queries.NewGetDailyOrderCountQuery())
	if err != nil {
		return translateError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"date":       count.Date,
		"orderCount": count.OrderCount,
		"message":    "Daily order count retrieved successfully",
	})
}

// HandlePaymentStatusWebhook handles POST /api/webhooks/payment-status.
// The payload is acknowledged and logged; reconciliation is driven by the
// payment client results, not by this webhook.
func (s *Server) HandlePaymentStatusWebhook(ctx echo.Context) error {
	var payload map[string]any
	if err := ctx.Bind(&payload); err != nil {
		return validationFailed(ctx, map[string]string{"body": "Invalid request body"})
	}

	s.logger.Info("received payment status webhook",
		"order_number", payload["orderNumber"],
		"payment_status", payload["paymentStatus"])

	return ctx.String(http.StatusOK, "Payment status updated successfully")
}

// HandleDeliveryStatusWebhook handles POST /api/webhooks/delivery-status.
func (s *Server) HandleDeliveryStatusWebhook(ctx echo.Context) error {
	var payload map[string]any
	if err := ctx.Bind(&payload); err != nil {
		return validationFailed(ctx, map[string]string{"body": "Invalid request body"})
	}

	s.logger.Info("received delivery status webhook",
		"order_number", payload["orderNumber"],
		"delivery_status", payload["deliveryStatus"])

	return ctx.String(http.StatusOK, "Delivery status updated successfully")
}

// Health handles GET /actuator/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{"status": "UP"})
}

// Metrics handles GET /actuator/metrics with basic process information.
func (s *Server) Metrics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"uptimeSeconds": int64(time.Since(s.startedAt).Seconds()),
	})
}
