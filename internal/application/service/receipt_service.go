package service

import (
	"context"
	"fmt"
	"log"

	"github.com/medipos/billing-api/internal/config"
	"github.com/medipos/billing-api/internal/domain/billing"
	"github.com/medipos/billing-api/internal/domain/entity"
	"github.com/medipos/billing-api/internal/domain/repository"
	"github.com/medipos/billing-api/pkg/apperror"
	"github.com/medipos/billing-api/pkg/email"
	"github.com/medipos/billing-api/pkg/printer"
)

// placeholder shown for missing identifying fields on a receipt.
const notAvailable = "N/A"

// ReceiptService composes printable receipts from orders and drives the
// thermal printer, PDF renderer and receipt emails. All figures come from
// a billing.Summary recomputed per call; nothing is cached.
type ReceiptService struct {
	printer      printer.Printer
	orderRepo    repository.OrderRepository
	emailService *email.EmailService
	store        config.StoreConfig
	printerType  string
	width        int
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	emailService *email.EmailService,
	store config.StoreConfig,
	printerCfg config.PrinterConfig,
) *ReceiptService {
	width := printerCfg.Width
	if width <= 0 {
		width = 32
	}
	return &ReceiptService{
		printer:      p,
		orderRepo:    orderRepo,
		emailService: emailService,
		store:        store,
		printerType:  printerCfg.Type,
		width:        width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes the printable receipt for an order. This is the
// presentation boundary: every monetary figure is rounded to two decimals
// here, exactly once, and missing identifying fields become "N/A".
// The cashier comes from the authenticated request, not the order; an
// empty cashier is simply left off the printout.
// A nil order yields a nil receipt — the "nothing to render" marker.
func (s *ReceiptService) BuildReceipt(order *entity.Order, cashier string) *entity.Receipt {
	if order == nil {
		return nil
	}

	summary := billing.Summarize(order.BillingItems(), order.DiscountPercentage)

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
			GSTIN:     s.store.GSTIN,
		},
		InvoiceNo:     valueOr(order.InvoiceNo, notAvailable),
		Date:          valueOr(order.OrderDate, notAvailable),
		Time:          valueOr(order.OrderTime, notAvailable),
		Cashier:       cashier,
		Doctor:        derefOr(order.Customer.DoctorName, notAvailable),
		Customer:      derefOr(order.Customer.CustomerName, notAvailable),
		Mobile:        derefOr(order.Customer.CustomerMobile, notAvailable),
		PaymentMethod: valueOr(order.PaymentMethod, notAvailable),
		Currency:      s.store.CurrencySymbol,
		SubTotal:      billing.Round2(summary.TotalAmount),
		Discount:      billing.Round2(summary.DiscountAmount),
		TaxableValue:  billing.Round2(summary.TaxableValue()),
		CGST:          billing.Round2(summary.Tax.CGSTAmount),
		SGST:          billing.Round2(summary.Tax.SGSTAmount),
		CGSTRateLabel: summary.Tax.CGSTRates.RangeLabel(),
		SGSTRateLabel: summary.Tax.SGSTRates.RangeLabel(),
		TotalTax:      billing.Round2(summary.TotalTax()),
		Total:         billing.Round2(summary.FinalAmount),
	}

	for _, it := range order.Cart {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:        valueOr(it.Name, notAvailable),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   billing.Round2(it.Price),
			Total:       billing.Round2(it.Price * float64(it.Quantity)),
		})
	}

	return receipt
}

// PreviewReceipt builds the receipt for an order without printing it.
func (s *ReceiptService) PreviewReceipt(ctx context.Context, orderID uint, cashier string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithCart(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.BuildReceipt(order, cashier), nil
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	receipt := s.BuildReceipt(&entity.Order{
		InvoiceNo:     "TEST-001",
		OrderDate:     "Test Date",
		OrderTime:     "Test Time",
		PaymentMethod: "Cash",
		Cart: []entity.OrderItem{
			{Name: "Test Item 1", Quantity: 1, Price: 10.00, CGSTRate: 9, SGSTRate: 9},
			{Name: "Test Item 2", Quantity: 2, Price: 5.00},
		},
	}, "")

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintOrderReceipt fetches an order (with its cart) and prints its receipt.
func (s *ReceiptService) PrintOrderReceipt(ctx context.Context, orderID uint, cashier string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithCart(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := s.BuildReceipt(order, cashier)

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %d): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// EmailReceipt renders the order's receipt and emails it to the customer.
func (s *ReceiptService) EmailReceipt(ctx context.Context, orderID uint, toEmail, cashier string) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithCart(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := s.BuildReceipt(order, cashier)

	data := email.ReceiptEmailData{
		StoreName:     receipt.Header.StoreName,
		Address:       receipt.Header.Address,
		Phone:         receipt.Header.Phone,
		GSTIN:         receipt.Header.GSTIN,
		InvoiceNo:     receipt.InvoiceNo,
		Date:          receipt.Date,
		Time:          receipt.Time,
		Customer:      receipt.Customer,
		PaymentMethod: receipt.PaymentMethod,
		Currency:      receipt.Currency,
		SubTotal:      money(receipt.SubTotal),
		TaxableValue:  money(receipt.TaxableValue),
		CGSTLabel:     receipt.CGSTRateLabel,
		CGST:          money(receipt.CGST),
		SGSTLabel:     receipt.SGSTRateLabel,
		SGST:          money(receipt.SGST),
		Total:         money(receipt.Total),
	}
	if receipt.Discount != 0 {
		data.Discount = money(receipt.Discount)
	}
	for _, it := range receipt.Items {
		data.Items = append(data.Items, email.ReceiptItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice),
			Total:     money(it.Total),
		})
	}

	if err := s.emailService.SendReceipt(toEmail, data); err != nil {
		log.Printf("Email error (order %d): %v", orderID, err)
		return receipt, fmt.Errorf("failed to email receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes. A nil receipt
// formats to nothing.
func (s *ReceiptService) FormatReceipt(r *entity.Receipt) []byte {
	if r == nil {
		return nil
	}

	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date).
		KeyValue("Time:", r.Time).
		KeyValue("Doctor:", r.Doctor).
		KeyValue("Customer:", r.Customer).
		KeyValue("Mobile:", r.Mobile).
		KeyValue("Payment:", r.PaymentMethod)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.SubLine(fmt.Sprintf("@ %.2f each", item.UnitPrice))
		}
		if item.Description != "" {
			doc.SubLine(item.Description)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", r.Currency+money(r.SubTotal))
	if r.Discount != 0 {
		doc.KeyValue("Discount:", "-"+r.Currency+money(r.Discount))
	}
	doc.KeyValue("Taxable value:", r.Currency+money(r.TaxableValue)).
		KeyValue(fmt.Sprintf("CGST (%s%%):", r.CGSTRateLabel), r.Currency+money(r.CGST)).
		KeyValue(fmt.Sprintf("SGST (%s%%):", r.SGSTRateLabel), r.Currency+money(r.SGST))

	doc.SetBold(true).
		KeyValue("TOTAL:", r.Currency+money(r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, get well soon!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// money formats an already-rounded amount with two decimals.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func derefOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
