package entity

import (
	"time"

	"github.com/medipos/billing-api/internal/domain/billing"
	"gorm.io/gorm"
)

// CustomerInfo is the optional identifying block on an order. All fields
// are descriptive only; receipts fall back to "N/A" for anything missing.
type CustomerInfo struct {
	DoctorName     *string `gorm:"size:255" json:"doctorName,omitempty"`
	CustomerName   *string `gorm:"size:255" json:"customerName,omitempty"`
	CustomerMobile *string `gorm:"size:50" json:"customerMobile,omitempty"`
}

// Order is a completed sale. It is written once at checkout and read-only
// afterwards; receipt totals are recomputed from the cart on every render
// rather than trusted from the stored denormalized columns.
type Order struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNo          string         `gorm:"size:100;uniqueIndex;not null" json:"invoiceNumber"`
	OrderDate          string         `gorm:"size:20" json:"orderDate"`
	OrderTime          string         `gorm:"size:20" json:"orderTime"`
	Total              float64        `json:"total"`
	PaymentMethod      string         `gorm:"size:50" json:"paymentMethod"`
	DiscountPercentage float64        `json:"discountPercentage"`
	Customer           CustomerInfo   `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Cart               []OrderItem    `gorm:"foreignKey:OrderID" json:"cart,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one cart line on an order, carrying its own price, quantity
// and the two GST component rates (percentages, 0 when untaxed).
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CGSTRate    float64 `gorm:"column:cgst_rate" json:"taxRateCGST,omitempty"`
	SGSTRate    float64 `gorm:"column:sgst_rate" json:"taxRateSGST,omitempty"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// BillingItems converts the cart into the calculator's line items. This is
// the single normalization point: a nil cart becomes an empty one and zero
// values stand in for absent fields, so the arithmetic downstream never
// special-cases missing data.
func (o *Order) BillingItems() []billing.LineItem {
	items := make([]billing.LineItem, 0, len(o.Cart))
	for _, it := range o.Cart {
		items = append(items, billing.LineItem{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Quantity:    it.Quantity,
			CGSTRate:    it.CGSTRate,
			SGSTRate:    it.SGSTRate,
		})
	}
	return items
}
