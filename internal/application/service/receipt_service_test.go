package service

import (
	"context"
	"strings"
	"testing"

	"github.com/medipos/billing-api/internal/config"
	"github.com/medipos/billing-api/internal/domain/entity"
	"github.com/medipos/billing-api/pkg/apperror"
	"github.com/medipos/billing-api/pkg/email"
	"github.com/medipos/billing-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReceiptService(repo *fakeOrderRepo) *ReceiptService {
	return NewReceiptService(
		printer.NewNullPrinter(),
		repo,
		email.NewEmailService(email.EmailConfig{}),
		config.StoreConfig{Name: "MediPos Pharmacy", GSTIN: "27AAAAA0000A1Z5", CurrencySymbol: "Rs."},
		config.PrinterConfig{Type: "none", Width: 32},
	)
}

func strPtr(s string) *string { return &s }

func TestBuildReceiptNilOrder(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())
	assert.Nil(t, svc.BuildReceipt(nil, ""))
}

func TestBuildReceiptTotals(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt := svc.BuildReceipt(&entity.Order{
		InvoiceNo:          "INV-1234",
		OrderDate:          "2026-08-31",
		OrderTime:          "14:05",
		PaymentMethod:      "Cash",
		DiscountPercentage: 10,
		Customer: entity.CustomerInfo{
			CustomerName: strPtr("Asha Rao"),
		},
		Cart: []entity.OrderItem{
			{Name: "Paracetamol 500mg", Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9},
		},
	}, "")

	require.NotNil(t, receipt)
	assert.Equal(t, 200.0, receipt.SubTotal)
	assert.Equal(t, 20.0, receipt.Discount)
	assert.Equal(t, 180.0, receipt.Total)
	// Tax keeps its pre-discount value; taxable value = 180 - 36.
	assert.Equal(t, 18.0, receipt.CGST)
	assert.Equal(t, 18.0, receipt.SGST)
	assert.Equal(t, 36.0, receipt.TotalTax)
	assert.Equal(t, 144.0, receipt.TaxableValue)
	assert.Equal(t, "9", receipt.CGSTRateLabel)
	assert.Equal(t, "9", receipt.SGSTRateLabel)

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 200.0, receipt.Items[0].Total)
}

func TestBuildReceiptRateRange(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt := svc.BuildReceipt(&entity.Order{
		Cart: []entity.OrderItem{
			{Name: "A", Price: 10, Quantity: 1, CGSTRate: 5},
			{Name: "B", Price: 10, Quantity: 1, CGSTRate: 12},
			{Name: "C", Price: 10, Quantity: 1, CGSTRate: 18},
		},
	}, "")

	// Middle rates collapse into the span.
	assert.Equal(t, "5-18", receipt.CGSTRateLabel)
	assert.Equal(t, "0", receipt.SGSTRateLabel)
}

func TestBuildReceiptMissingFieldsBecomeNA(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt := svc.BuildReceipt(&entity.Order{}, "")

	assert.Equal(t, "N/A", receipt.InvoiceNo)
	assert.Equal(t, "N/A", receipt.Date)
	assert.Equal(t, "N/A", receipt.Time)
	assert.Equal(t, "N/A", receipt.Doctor)
	assert.Equal(t, "N/A", receipt.Customer)
	assert.Equal(t, "N/A", receipt.Mobile)
	assert.Equal(t, "N/A", receipt.PaymentMethod)
	assert.Zero(t, receipt.Total)
}

func TestBuildReceiptRoundsAtBoundary(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	// 3 x 33.333 = 99.999, displayed as 100.00
	receipt := svc.BuildReceipt(&entity.Order{
		Cart: []entity.OrderItem{{Name: "A", Price: 33.333, Quantity: 3}},
	}, "")

	assert.Equal(t, 100.0, receipt.SubTotal)
	assert.Equal(t, 100.0, receipt.Total)
}

func TestBuildReceiptCarriesCashier(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	order := &entity.Order{
		Cart: []entity.OrderItem{{Name: "A", Price: 10, Quantity: 1}},
	}

	receipt := svc.BuildReceipt(order, "R. Iyer")
	assert.Equal(t, "R. Iyer", receipt.Cashier)

	out := string(svc.FormatReceipt(receipt))
	assert.Contains(t, out, "Cashier:")
	assert.Contains(t, out, "R. Iyer")

	// Unauthenticated renders skip the line entirely.
	anonymous := svc.BuildReceipt(order, "")
	assert.Empty(t, anonymous.Cashier)
	assert.NotContains(t, string(svc.FormatReceipt(anonymous)), "Cashier:")
}

func TestPreviewReceiptIncludesCashier(t *testing.T) {
	repo := newFakeOrderRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.Order{
		InvoiceNo: "INV-3",
		Cart:      []entity.OrderItem{{Name: "A", Price: 10, Quantity: 1}},
	}))
	svc := newTestReceiptService(repo)

	receipt, err := svc.PreviewReceipt(context.Background(), 1, "R. Iyer")
	require.NoError(t, err)
	assert.Equal(t, "R. Iyer", receipt.Cashier)
}

func TestFormatReceiptLayout(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt := svc.BuildReceipt(&entity.Order{
		InvoiceNo:          "INV-9",
		PaymentMethod:      "Cash",
		DiscountPercentage: 10,
		Cart: []entity.OrderItem{
			{Name: "Cough Syrup", Price: 90, Quantity: 2, CGSTRate: 2.5, SGSTRate: 2.5},
		},
	}, "")

	out := string(svc.FormatReceipt(receipt))

	assert.Contains(t, out, "MediPos Pharmacy")
	assert.Contains(t, out, "GSTIN: 27AAAAA0000A1Z5")
	assert.Contains(t, out, "Cough Syrup")
	assert.Contains(t, out, "CGST (2.5%):")
	assert.Contains(t, out, "TOTAL:")
	assert.Contains(t, out, "Discount:")
}

func TestFormatReceiptOmitsZeroDiscount(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt := svc.BuildReceipt(&entity.Order{
		Cart: []entity.OrderItem{{Name: "A", Price: 10, Quantity: 1}},
	}, "")

	out := string(svc.FormatReceipt(receipt))
	assert.False(t, strings.Contains(out, "Discount:"))
}

func TestFormatReceiptNil(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())
	assert.Nil(t, svc.FormatReceipt(nil))
}

func TestPreviewReceiptNotFound(t *testing.T) {
	svc := newTestReceiptService(newFakeOrderRepo())

	receipt, err := svc.PreviewReceipt(context.Background(), 42, "")
	assert.Nil(t, receipt)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestPrintOrderReceipt(t *testing.T) {
	repo := newFakeOrderRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.Order{
		InvoiceNo:     "INV-7",
		PaymentMethod: "Card",
		Cart: []entity.OrderItem{
			{Name: "Bandage", Price: 25, Quantity: 4, CGSTRate: 6, SGSTRate: 6},
		},
	}))
	svc := newTestReceiptService(repo)

	receipt, err := svc.PrintOrderReceipt(context.Background(), 1, "")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, 100.0, receipt.Total)
	assert.Equal(t, 12.0, receipt.TotalTax)
}
