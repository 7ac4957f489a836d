package request

// EmailReceiptRequest asks for an order's receipt to be emailed.
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
