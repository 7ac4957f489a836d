// Package pdfrender renders a composed receipt as a PDF document for
// download or archival. Layout mirrors the thermal printout: centered
// store header, invoice metadata, itemized cart, and the totals block.
package pdfrender

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/medipos/billing-api/internal/domain/entity"
)

const (
	pageWidth  = 80.0 // mm, thermal-roll width
	marginSide = 5.0
	lineHeight = 4.5
)

// RenderReceipt renders the receipt into PDF bytes. A nil receipt renders
// to nothing.
func RenderReceipt(r *entity.Receipt) ([]byte, error) {
	if r == nil {
		return nil, nil
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: 297},
	})
	pdf.SetMargins(marginSide, marginSide, marginSide)
	pdf.SetAutoPageBreak(true, marginSide)
	pdf.AddPage()

	usable := pageWidth - 2*marginSide

	// Header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(usable, lineHeight+1, r.Header.StoreName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if r.Header.Address != "" {
		pdf.CellFormat(usable, lineHeight, r.Header.Address, "", 1, "C", false, 0, "")
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(usable, lineHeight, r.Header.Phone, "", 1, "C", false, 0, "")
	}
	if r.Header.GSTIN != "" {
		pdf.CellFormat(usable, lineHeight, "GSTIN: "+r.Header.GSTIN, "", 1, "C", false, 0, "")
	}
	rule(pdf, usable)

	// Invoice metadata
	kv(pdf, usable, "Invoice:", r.InvoiceNo)
	kv(pdf, usable, "Date:", r.Date)
	kv(pdf, usable, "Time:", r.Time)
	kv(pdf, usable, "Doctor:", r.Doctor)
	kv(pdf, usable, "Customer:", r.Customer)
	kv(pdf, usable, "Mobile:", r.Mobile)
	kv(pdf, usable, "Payment:", r.PaymentMethod)
	if r.Cashier != "" {
		kv(pdf, usable, "Cashier:", r.Cashier)
	}
	rule(pdf, usable)

	// Items
	for _, item := range r.Items {
		name := fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		kv(pdf, usable, name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			sub(pdf, usable, fmt.Sprintf("@ %.2f each", item.UnitPrice))
		}
		if item.Description != "" {
			sub(pdf, usable, item.Description)
		}
	}
	rule(pdf, usable)

	// Totals
	kv(pdf, usable, "Subtotal:", r.Currency+fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount != 0 {
		kv(pdf, usable, "Discount:", "-"+r.Currency+fmt.Sprintf("%.2f", r.Discount))
	}
	kv(pdf, usable, "Taxable value:", r.Currency+fmt.Sprintf("%.2f", r.TaxableValue))
	kv(pdf, usable, fmt.Sprintf("CGST (%s%%):", r.CGSTRateLabel), r.Currency+fmt.Sprintf("%.2f", r.CGST))
	kv(pdf, usable, fmt.Sprintf("SGST (%s%%):", r.SGSTRateLabel), r.Currency+fmt.Sprintf("%.2f", r.SGST))

	pdf.SetFont("Helvetica", "B", 9)
	kv(pdf, usable, "TOTAL:", r.Currency+fmt.Sprintf("%.2f", r.Total))
	pdf.SetFont("Helvetica", "", 8)
	rule(pdf, usable)

	pdf.Ln(2)
	pdf.CellFormat(usable, lineHeight, "Thank you, get well soon!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func kv(pdf *gofpdf.Fpdf, usable float64, key, value string) {
	pdf.CellFormat(usable/2, lineHeight, key, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, lineHeight, value, "", 1, "R", false, 0, "")
}

func sub(pdf *gofpdf.Fpdf, usable float64, s string) {
	pdf.CellFormat(usable, lineHeight-0.5, "  "+s, "", 1, "L", false, 0, "")
}

func rule(pdf *gofpdf.Fpdf, usable float64) {
	pdf.Ln(1)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, x+usable, y)
	pdf.Ln(1.5)
}
