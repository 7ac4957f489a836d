package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  float64
	}{
		{"nil cart", nil, 0},
		{"empty cart", []LineItem{}, 0},
		{"single item", []LineItem{{Price: 100, Quantity: 2}}, 200},
		{"multiple items", []LineItem{{Price: 100, Quantity: 2}, {Price: 49.5, Quantity: 1}}, 249.5},
		{"zero quantity contributes nothing", []LineItem{{Price: 100, Quantity: 0}}, 0},
		{"zero price contributes nothing", []LineItem{{Price: 0, Quantity: 5}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalAmount(tt.items))
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		pct   float64
		want  float64
	}{
		{"zero percentage suppresses discount", 1000, 0, 0},
		{"ten percent", 200, 10, 20},
		{"fractional percentage", 150, 2.5, 3.75},
		{"negative percentage passes through", 100, -10, -10},
		{"over one hundred passes through", 100, 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountAmount(tt.total, tt.pct))
		})
	}
}

func TestFinalAmountIdentity(t *testing.T) {
	// finalAmount == totalAmount - discountAmount must hold for every input.
	cases := [][2]float64{{200, 20}, {0, 0}, {99.99, 0}, {100, -10}, {50, 75}}
	for _, c := range cases {
		assert.Equal(t, c[0]-c[1], FinalAmount(c[0], c[1]))
	}
}

func TestComputeItemTax(t *testing.T) {
	item := LineItem{Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9}
	tax := ComputeItemTax(item)
	assert.Equal(t, 18.0, tax.CGST)
	assert.Equal(t, 18.0, tax.SGST)
}

func TestComputeItemTaxMissingRates(t *testing.T) {
	tax := ComputeItemTax(LineItem{Price: 100, Quantity: 2})
	assert.Zero(t, tax.CGST)
	assert.Zero(t, tax.SGST)
}

func TestComputeTaxSummaryAccumulates(t *testing.T) {
	items := []LineItem{
		{Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9},
		{Price: 50, Quantity: 1, CGSTRate: 2.5, SGSTRate: 2.5},
		{Price: 10, Quantity: 3}, // untaxed item still counts toward the base
	}

	ts := ComputeTaxSummary(items)

	assert.Equal(t, 280.0, ts.BaseAmount)
	assert.InDelta(t, 19.25, ts.CGSTAmount, 1e-9)
	assert.InDelta(t, 19.25, ts.SGSTAmount, 1e-9)
	assert.Equal(t, []float64{9, 2.5}, ts.CGSTRates.Values())
	assert.Equal(t, []float64{9, 2.5}, ts.SGSTRates.Values())
}

func TestComputeTaxSummaryDeduplicatesRates(t *testing.T) {
	items := []LineItem{
		{Price: 10, Quantity: 1, CGSTRate: 5},
		{Price: 20, Quantity: 1, CGSTRate: 5},
		{Price: 30, Quantity: 1, CGSTRate: 12},
	}

	ts := ComputeTaxSummary(items)

	require.Equal(t, 2, ts.CGSTRates.Len())
	assert.Equal(t, []float64{5, 12}, ts.CGSTRates.Values())
	assert.Zero(t, ts.SGSTRates.Len())
}

func TestSummarizeWithoutDiscount(t *testing.T) {
	items := []LineItem{{Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9}}

	s := Summarize(items, 0)

	assert.Equal(t, 200.0, s.TotalAmount)
	assert.Equal(t, 0.0, s.DiscountAmount)
	assert.Equal(t, 200.0, s.FinalAmount)
	assert.Equal(t, 18.0, s.Tax.CGSTAmount)
	assert.Equal(t, 18.0, s.Tax.SGSTAmount)
	assert.Equal(t, 36.0, s.TotalTax())
	assert.Equal(t, 164.0, s.TaxableValue())
}

func TestSummarizeDiscountDoesNotReduceTax(t *testing.T) {
	items := []LineItem{{Price: 100, Quantity: 2, CGSTRate: 9, SGSTRate: 9}}

	s := Summarize(items, 10)

	assert.Equal(t, 200.0, s.TotalAmount)
	assert.Equal(t, 20.0, s.DiscountAmount)
	assert.Equal(t, 180.0, s.FinalAmount)
	// Tax keeps its pre-discount value.
	assert.Equal(t, 18.0, s.Tax.CGSTAmount)
	assert.Equal(t, 18.0, s.Tax.SGSTAmount)
	assert.Equal(t, 144.0, s.TaxableValue())
}

func TestSummarizeEmptyCart(t *testing.T) {
	for _, pct := range []float64{0, 10, -5, 150} {
		s := Summarize(nil, pct)

		assert.Zero(t, s.TotalAmount)
		assert.Zero(t, s.DiscountAmount)
		assert.Zero(t, s.FinalAmount)
		assert.Zero(t, s.Tax.BaseAmount)
		assert.Zero(t, s.TotalTax())
		assert.Equal(t, "0", s.Tax.CGSTRates.RangeLabel())
		assert.Equal(t, "0", s.Tax.SGSTRates.RangeLabel())
	}
}

func TestSummarizeBaseAmountMatchesTotal(t *testing.T) {
	items := []LineItem{
		{Price: 12.5, Quantity: 4, CGSTRate: 6},
		{Price: 3, Quantity: 7, SGSTRate: 14},
	}

	s := Summarize(items, 25)

	assert.Equal(t, s.TotalAmount, s.Tax.BaseAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.25, Round2(19.248))
	assert.Equal(t, 19.25, Round2(19.252))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.5, Round2(-1.504))
}
