package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/billing-api/internal/domain/billing"
	"github.com/medipos/billing-api/internal/domain/entity"
	"github.com/medipos/billing-api/internal/domain/repository"
	"github.com/medipos/billing-api/pkg/apperror"
	"github.com/medipos/billing-api/pkg/pagination"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	CGSTRate    float64
	SGSTRate    float64
}

// CreateOrderInput represents the create order input. Optional fields left
// empty are stored as-is; receipts render "N/A" placeholders for them.
type CreateOrderInput struct {
	OrderDate          string
	OrderTime          string
	PaymentMethod      string
	DiscountPercentage float64
	DoctorName         string
	CustomerName       string
	CustomerMobile     string
	Items              []OrderItemInput
}

// CreateOrder stores a new order. The denormalized total is computed by the
// billing calculator; everything else on the receipt is recomputed from the
// cart at render time.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	now := time.Now()
	orderDate := input.OrderDate
	if orderDate == "" {
		orderDate = now.Format("2006-01-02")
	}
	orderTime := input.OrderTime
	if orderTime == "" {
		orderTime = now.Format("15:04")
	}

	cart := make([]entity.OrderItem, 0, len(input.Items))
	billingItems := make([]billing.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		cart = append(cart, entity.OrderItem{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CGSTRate:    it.CGSTRate,
			SGSTRate:    it.SGSTRate,
		})
		billingItems = append(billingItems, billing.LineItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			CGSTRate: it.CGSTRate,
			SGSTRate: it.SGSTRate,
		})
	}

	summary := billing.Summarize(billingItems, input.DiscountPercentage)

	// Generate invoice number
	invoiceNo := fmt.Sprintf("INV-%s", uuid.New().String()[:8])

	order := &entity.Order{
		InvoiceNo:          invoiceNo,
		OrderDate:          orderDate,
		OrderTime:          orderTime,
		Total:              summary.FinalAmount,
		PaymentMethod:      input.PaymentMethod,
		DiscountPercentage: input.DiscountPercentage,
		Customer: entity.CustomerInfo{
			DoctorName:     optional(input.DoctorName),
			CustomerName:   optional(input.CustomerName),
			CustomerMobile: optional(input.CustomerMobile),
		},
		Cart: cart,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithCart(ctx, order.ID)
}

// GetOrder retrieves an order with its cart by ID
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithCart(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByInvoiceNo retrieves an order with its cart by invoice number,
// the lookup a terminal uses when re-printing from a paper copy.
func (s *OrderService) GetOrderByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.GetWithCart(ctx, order.ID)
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder soft-deletes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// optional maps an empty string to nil so absent fields stay NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
