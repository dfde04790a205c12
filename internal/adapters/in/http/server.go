package http

import (
	"errors"
	"net/http"
	"strconv"

	"butchermarket/internal/core/application/usecases/commands"
	"butchermarket/internal/core/application/usecases/queries"
	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/domain/model/product"
	"butchermarket/internal/core/ports"
	"butchermarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server translates HTTP requests into application use cases.
//
// Catalog CRUD talks to the product repository directly: beyond the Product
// constructor there is no invariant to coordinate, so a command layer would
// only relay arguments.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	listOrdersHandler    queries.ListOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	statusSummaryHandler queries.StatusSummaryQueryHandler

	products ports.ProductRepository
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	statusSummaryHandler queries.StatusSummaryQueryHandler,
	products ports.ProductRepository,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		statusSummaryHandler:     statusSummaryHandler,
		products:                 products,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/summary", s.GetStatusSummary)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
}

// PlaceOrder handles POST /api/v1/orders - order intake.
//
// A ValidationError comes back as 422 with the complete field -> message map,
// so the storefront can mark every broken input at once.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cart := make([]commands.CartLine, 0, len(request.Items))
	for _, line := range request.Items {
		cart = append(cart, commands.CartLine{
			ProductID: line.ProductID,
			Quantity:  decimal.NewFromFloat(line.Quantity),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		request.CustomerName,
		request.CustomerPhone,
		request.AlternatePhone,
		request.CustomerAddress,
		request.Landmark,
		request.PaymentMethod,
		cart,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ListOrders handles GET /api/v1/orders - the staff listing.
//
// Query parameters: status (stage name, omit for all), search (free text),
// sort (id|date|totalAmount|status|customerName) and dir (asc|desc). Sort
// defaults to newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := listQueryFromParams(
		ctx.QueryParam("status"),
		ctx.QueryParam("search"),
		ctx.QueryParam("sort"),
		ctx.QueryParam("dir"),
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		response = append(response, toOrderResponse(aggregate))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - the tracking view.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	steps, err := order.ProgressFor(aggregate.Status())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(aggregate, steps))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + request.Status,
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetStatusSummary handles GET /api/v1/orders/summary - dashboard counters.
func (s *Server) GetStatusSummary(ctx echo.Context) error {
	summary, err := s.statusSummaryHandler.Handle(ctx.Request().Context(), queries.NewStatusSummaryQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	counts := make(map[string]int, len(summary.Counts))
	for status, count := range summary.Counts {
		counts[status.String()] = count
	}
	return ctx.JSON(http.StatusOK, StatusSummaryResponse{Counts: counts, Total: summary.Total})
}

// ListProducts handles GET /api/v1/products - the catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	all, err := s.products.GetAll(ctx.Request().Context())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(all))
	for _, aggregate := range all {
		response = append(response, toProductResponse(aggregate))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requestCtx := ctx.Request().Context()
	id, err := s.products.NextID(requestCtx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	aggregate, err := product.NewProduct(id, request.Name, decimal.NewFromFloat(request.PricePerKg))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if err = s.products.Add(requestCtx, aggregate); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toProductResponse(aggregate))
}

// UpdateProduct handles PUT /api/v1/products/:id.
//
// Orders snapshot name and price at creation, so a catalog edit never touches
// the order book.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := productIDFromParam(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Product not found",
		})
	}

	var request ProductRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	aggregate, err := product.NewProduct(id, request.Name, decimal.NewFromFloat(request.PricePerKg))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if err = s.products.Update(ctx.Request().Context(), aggregate); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toProductResponse(aggregate))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := productIDFromParam(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Product not found",
		})
	}

	if err = s.products.Remove(ctx.Request().Context(), id); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps application errors to HTTP responses.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var validation *errs.ValidationError
	if errors.As(err, &validation) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Fields:  validation.Fields,
		})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if errors.Is(err, queries.ErrInvalidQuery) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// listQueryFromParams builds the listing query from raw query parameters,
// applying the newest-first default when sort parameters are absent. An
// absent status param and the literal "all" both mean no status filter.
func listQueryFromParams(rawStatus, rawSearch, rawSort, rawDir string) (queries.ListOrdersQuery, error) {
	var statusFilter *order.Status
	if rawStatus != "" && rawStatus != "all" {
		status, err := order.StatusFromString(rawStatus)
		if err != nil {
			return queries.ListOrdersQuery{},
				errors.Join(queries.ErrInvalidQuery, err)
		}
		statusFilter = &status
	}

	sortKey := queries.SortByDate
	sortDirection := queries.Descending

	if rawSort != "" {
		key, err := queries.SortKeyFromString(rawSort)
		if err != nil {
			return queries.ListOrdersQuery{}, err
		}
		sortKey = key
		sortDirection = queries.Ascending
	}
	if rawDir != "" {
		direction, err := queries.SortDirectionFromString(rawDir)
		if err != nil {
			return queries.ListOrdersQuery{}, err
		}
		sortDirection = direction
	}

	return queries.NewListOrdersQuery(statusFilter, rawSearch, sortKey, sortDirection)
}

func productIDFromParam(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("productId")
	}
	return id, nil
}
