package request

// OrderItemRequest is one cart line on an incoming order. Price, quantity
// and the tax rates default to zero when omitted; the billing calculator
// treats those as untaxed/free lines rather than rejecting them.
type OrderItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	CGSTRate    float64 `json:"taxRateCGST"`
	SGSTRate    float64 `json:"taxRateSGST"`
}

// CreateOrderRequest represents an order create request from a POS
// terminal. Date and time default to the server clock when omitted.
type CreateOrderRequest struct {
	OrderDate          string             `json:"orderDate"`
	OrderTime          string             `json:"orderTime"`
	PaymentMethod      string             `json:"paymentMethod" binding:"required"`
	DiscountPercentage float64            `json:"discountPercentage"`
	DoctorName         string             `json:"doctorName"`
	CustomerName       string             `json:"customerName"`
	CustomerMobile     string             `json:"customerMobile"`
	// An absent or empty cart is accepted; it bills to zero.
	Items []OrderItemRequest `json:"cart" binding:"dive"`
}

// ListOrdersQuery holds the query parameters for listing orders.
type ListOrdersQuery struct {
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Search        string `form:"search"`
	PaymentMethod string `form:"payment_method"`
	StartDate     string `form:"start_date"` // YYYY-MM-DD
	EndDate       string `form:"end_date"`   // YYYY-MM-DD
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
}
