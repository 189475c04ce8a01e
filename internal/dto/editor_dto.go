package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ───────────────────────────────────────────────────────────

// OpenSessionRequest opens a fresh editor session for one document type.
type OpenSessionRequest struct {
	Type string `json:"type" validate:"required,oneof=stock_transfer stock_adjustment goods_received"`
}

// PatchLineRequest patches a single independent field of a line. Exactly one
// field should be set; the handler applies whichever pointers are non-nil so
// a keystroke-sized PATCH stays a single round trip.
type PatchLineRequest struct {
	Quantity  *decimal.Decimal `json:"quantity"   validate:"omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty"`
	Unit      *string          `json:"unit"       validate:"omitempty"`
}

type SelectProductRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// PatchHeaderRequest patches header fields; nil pointers are left untouched.
// Percent bounds are enforced here — the engine itself is permissive.
type PatchHeaderRequest struct {
	Date                *string          `json:"date"                 validate:"omitempty,datetime=2006-01-02"`
	SourceLocation      *string          `json:"source_location"`
	DestinationLocation *string          `json:"destination_location"`
	Location            *string          `json:"location"`
	SupplierID          *string          `json:"supplier_id"          validate:"omitempty,uuid"`
	DiscountPercent     *decimal.Decimal `json:"discount_percent"     validate:"omitempty,min=0,max=100"`
	TaxPercent          *decimal.Decimal `json:"tax_percent"          validate:"omitempty,min=0,max=100"`
	FreightAmount       *decimal.Decimal `json:"freight_amount"       validate:"omitempty,min=0"`
	Notes               *string          `json:"notes"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type LineResponse struct {
	ID               string                `json:"id"`
	ProductID        *string               `json:"product_id"`
	DisplayName      string                `json:"display_name"`
	Unit             string                `json:"unit"`
	ConversionFactor decimal.Decimal       `json:"conversion_factor"`
	UnitOptions      []ProductUnitResponse `json:"unit_options"`
	Quantity         decimal.Decimal       `json:"quantity"`
	UnitPrice        decimal.Decimal       `json:"unit_price"`
	LineTotal        decimal.Decimal       `json:"line_total"`
}

type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableAmount  decimal.Decimal `json:"taxable_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	LineCount      int             `json:"line_count"`
}

type HeaderResponse struct {
	Date                string          `json:"date"`
	SourceLocation      string          `json:"source_location,omitempty"`
	DestinationLocation string          `json:"destination_location,omitempty"`
	Location            string          `json:"location,omitempty"`
	SupplierID          *string         `json:"supplier_id"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	TaxPercent          decimal.Decimal `json:"tax_percent"`
	FreightAmount       decimal.Decimal `json:"freight_amount"`
	Notes               string          `json:"notes,omitempty"`
}

// SessionResponse is the full editor state returned after every mutation, so
// the client renders derived totals without a second request.
type SessionResponse struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Header HeaderResponse `json:"header"`
	Lines  []LineResponse `json:"lines"`
	Totals TotalsResponse `json:"totals"`
}

// SaveResponse confirms a persisted document.
type SaveResponse struct {
	ID             string         `json:"id"`
	DocumentNumber string         `json:"document_number"`
	Totals         TotalsResponse `json:"totals"`
	LineCount      int            `json:"line_count"`
}
