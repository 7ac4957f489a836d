package repository

import (
	"context"
	"time"

	"github.com/medipos/billing-api/internal/domain/entity"
	"github.com/medipos/billing-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	// GetWithCart loads the order together with its line items.
	GetWithCart(ctx context.Context, id uint) (*entity.Order, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string // matches against invoice number
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}
