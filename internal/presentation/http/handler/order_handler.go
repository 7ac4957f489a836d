package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medipos/billing-api/internal/application/service"
	domainRepo "github.com/medipos/billing-api/internal/domain/repository"
	"github.com/medipos/billing-api/internal/presentation/http/dto/request"
	"github.com/medipos/billing-api/internal/presentation/http/dto/response"
	"github.com/medipos/billing-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create stores a new order from a POS terminal checkout.
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{
		OrderDate:          req.OrderDate,
		OrderTime:          req.OrderTime,
		PaymentMethod:      req.PaymentMethod,
		DiscountPercentage: req.DiscountPercentage,
		DoctorName:         req.DoctorName,
		CustomerName:       req.CustomerName,
		CustomerMobile:     req.CustomerMobile,
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CGSTRate:    it.CGSTRate,
			SGSTRate:    it.SGSTRate,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get retrieves an order with its cart by ID.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// GetByInvoice retrieves an order with its cart by invoice number.
func (h *OrderHandler) GetByInvoice(c *gin.Context) {
	invoiceNo := c.Param("invoiceNo")
	if invoiceNo == "" {
		response.BadRequest(c, "Invoice number is required")
		return
	}

	order, err := h.orderService.GetOrderByInvoiceNo(c.Request.Context(), invoiceNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List retrieves orders with filtering and pagination.
func (h *OrderHandler) List(c *gin.Context) {
	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	pag := &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage}
	pag.Validate()

	params := &domainRepo.OrderFilterParams{
		Pagination:    pag,
		Search:        query.Search,
		PaymentMethod: query.PaymentMethod,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}

	if query.StartDate != "" {
		t, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &t
	}
	if query.EndDate != "" {
		t, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		// include the whole end day
		t = t.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &t
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Delete soft-deletes an order.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// parseOrderID reads the :id path parameter. On failure it writes the 400
// response itself and returns ok=false.
func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return 0, false
	}
	return uint(id), true
}
