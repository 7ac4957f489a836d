package entity

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from an order and a freshly
// computed billing summary at render time. Monetary fields are rounded to
// two decimals here, at the presentation boundary, and nowhere earlier.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	InvoiceNo     string        `json:"invoice_no"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Cashier       string        `json:"cashier,omitempty"`
	Doctor        string        `json:"doctor"`
	Customer      string        `json:"customer"`
	Mobile        string        `json:"mobile"`
	PaymentMethod string        `json:"payment_method"`
	Currency      string        `json:"currency"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	Discount      float64       `json:"discount"`
	TaxableValue  float64       `json:"taxable_value"`
	CGST          float64       `json:"cgst"`
	SGST          float64       `json:"sgst"`
	CGSTRateLabel string        `json:"cgst_rate_label"`
	SGSTRateLabel string        `json:"sgst_rate_label"`
	TotalTax      float64       `json:"total_tax"`
	Total         float64       `json:"total"`
}
