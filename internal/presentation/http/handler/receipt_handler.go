package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medipos/billing-api/internal/application/service"
	"github.com/medipos/billing-api/internal/presentation/http/dto/request"
	"github.com/medipos/billing-api/internal/presentation/http/dto/response"
	"github.com/medipos/billing-api/internal/presentation/http/middleware"
	"github.com/medipos/billing-api/pkg/pdfrender"
)

// ReceiptHandler serves receipt previews, PDFs, printing and emailing for
// stored orders.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Preview returns the composed receipt as JSON without printing it.
func (h *ReceiptHandler) Preview(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.PreviewReceipt(c.Request.Context(), id, middleware.GetCashier(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt generated successfully", gin.H{"receipt": receipt})
}

// PDF streams the receipt as a PDF download.
func (h *ReceiptHandler) PDF(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.PreviewReceipt(c.Request.Context(), id, middleware.GetCashier(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := pdfrender.RenderReceipt(receipt)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", receipt.InvoiceNo)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Print sends the order's receipt to the thermal printer.
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.PrintOrderReceipt(c.Request.Context(), id, middleware.GetCashier(c))
	if err != nil {
		// If the receipt was built but printing failed, return it with a
		// warning so the terminal can fall back to the on-screen copy.
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{"receipt": receipt})
}

// Email sends the order's receipt to the given address.
func (h *ReceiptHandler) Email(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	receipt, err := h.receiptService.EmailReceipt(c.Request.Context(), id, req.Email, middleware.GetCashier(c))
	if err != nil {
		if receipt != nil {
			response.OK(c, "Receipt generated but email failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", gin.H{"receipt": receipt})
}
