// Package billing computes the financial summary printed on a receipt:
// cart subtotal, order-level discount, the CGST/SGST tax split, and the
// final payable amount.
//
// Every function here is pure and total: missing numeric fields are zero,
// a nil cart is an empty cart, and no input produces an error or panic.
// Summaries are recomputed on every call and never cached.
package billing

import "math"

// LineItem is one cart entry as seen by the calculator. Zero values stand
// in for fields absent on the original order.
type LineItem struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	CGSTRate    float64 // percentage, 0 when the item carries no CGST
	SGSTRate    float64 // percentage, 0 when the item carries no SGST
}

// ItemTax holds the two tax component amounts for a single line item.
type ItemTax struct {
	CGST float64
	SGST float64
}

// TaxSummary aggregates tax over a whole cart.
type TaxSummary struct {
	BaseAmount float64 // sum of price x quantity over all items
	CGSTAmount float64
	SGSTAmount float64
	CGSTRates  RateSet
	SGSTRates  RateSet
}

// Summary is the complete financial breakdown of an order.
//
// DiscountAmount is taken off the pre-tax subtotal, while tax is computed
// from pre-discount per-item amounts: the discount never reduces tax.
// This ordering is a billing contract, not an accident; changing it changes
// every printed total.
type Summary struct {
	TotalAmount    float64
	DiscountAmount float64
	FinalAmount    float64
	Tax            TaxSummary
}

// TotalTax returns the combined CGST and SGST amount.
func (s *Summary) TotalTax() float64 {
	return s.Tax.CGSTAmount + s.Tax.SGSTAmount
}

// TaxableValue returns the final payable amount minus total tax, i.e. the
// base the tax was computed on as shown on the receipt.
func (s *Summary) TaxableValue() float64 {
	return s.FinalAmount - s.TotalTax()
}

// TotalAmount sums quantity x price over the cart. Nil or empty carts
// total zero.
func TotalAmount(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

// DiscountAmount computes the order-level discount. A zero percentage
// suppresses the discount entirely; any other value, including negative or
// >100, is applied as given.
func DiscountAmount(total, discountPercentage float64) float64 {
	if discountPercentage == 0 {
		return 0
	}
	return total * discountPercentage / 100
}

// FinalAmount is the payable amount after discount.
func FinalAmount(total, discount float64) float64 {
	return total - discount
}

// ComputeItemTax returns the CGST and SGST amounts for a single item,
// each computed off the item's pre-discount price x quantity.
func ComputeItemTax(item LineItem) ItemTax {
	base := item.Price * float64(item.Quantity)
	return ItemTax{
		CGST: base * item.CGSTRate / 100,
		SGST: base * item.SGSTRate / 100,
	}
}

// ComputeTaxSummary folds ComputeItemTax over the cart, accumulating the
// taxable base, both component amounts, and the distinct positive rates
// seen for each component.
func ComputeTaxSummary(items []LineItem) TaxSummary {
	var ts TaxSummary
	for _, it := range items {
		tax := ComputeItemTax(it)
		ts.BaseAmount += it.Price * float64(it.Quantity)
		ts.CGSTAmount += tax.CGST
		ts.SGSTAmount += tax.SGST
		ts.CGSTRates.Add(it.CGSTRate)
		ts.SGSTRates.Add(it.SGSTRate)
	}
	return ts
}

// Summarize produces the full financial summary for a cart and an
// order-level discount percentage. It is defined for every input: a nil
// cart yields an all-zero summary.
func Summarize(items []LineItem, discountPercentage float64) Summary {
	total := TotalAmount(items)
	discount := DiscountAmount(total, discountPercentage)
	return Summary{
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    FinalAmount(total, discount),
		Tax:            ComputeTaxSummary(items),
	}
}

// Round2 rounds to two decimals. It belongs at the presentation boundary:
// callers round each displayed figure once and never feed the rounded
// value back into arithmetic.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
