package docedit

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Totals are the document-level derived values. They are recomputed from the
// registry on demand and never stored independently of the lines that
// produced them; computing them twice over an unchanged session yields
// identical results.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	LineCount      int             `json:"line_count"`
}

// Totals recomputes the document aggregates:
//
//	subtotal      = Σ lineTotal over lines with a product
//	discount      = subtotal × discountPercent / 100
//	taxable       = subtotal − discount
//	tax           = taxable × taxPercent / 100
//	grandTotal    = taxable + tax + freight
//
// Discount and tax percentages are intentionally not clamped here; the HTTP
// layer rejects out-of-range values before they reach the session.
func (s *Session) Totals() Totals {
	t := Totals{
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxableAmount:  decimal.Zero,
		TaxAmount:      decimal.Zero,
		GrandTotal:     decimal.Zero,
		TotalQuantity:  decimal.Zero,
	}
	for _, l := range s.lines {
		if !l.countsTowardTotals() {
			continue
		}
		t.Subtotal = t.Subtotal.Add(l.LineTotal)
		t.TotalQuantity = t.TotalQuantity.Add(l.Quantity)
		t.LineCount++
	}
	t.DiscountAmount = t.Subtotal.Mul(s.Header.DiscountPercent).Div(hundred)
	t.TaxableAmount = t.Subtotal.Sub(t.DiscountAmount)
	t.TaxAmount = t.TaxableAmount.Mul(s.Header.TaxPercent).Div(hundred)
	t.GrandTotal = t.TaxableAmount.Add(t.TaxAmount).Add(s.Header.FreightAmount)
	return t
}
