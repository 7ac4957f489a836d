package repository

import (
	"context"
	"errors"

	"github.com/medipos/billing-api/internal/domain/entity"
	domainRepo "github.com/medipos/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithCart(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Cart").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.PaymentMethod != "" {
		query = query.Where("payment_method = ?", params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	switch sortBy {
	case "invoice_no", "total", "created_at":
		// allowed sort columns
	default:
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(sortBy + " " + sortOrder)

	if params.Pagination != nil {
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.Preload("Cart").Find(&orders).Error
	return orders, total, err
}
