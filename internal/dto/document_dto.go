package dto

import "github.com/shopspring/decimal"

// DocumentFilter is bound from the query string of GET /v1/documents.
type DocumentFilter struct {
	Type     string `form:"type"      validate:"omitempty,oneof=stock_transfer stock_adjustment goods_received"`
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to"   validate:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type DocumentLineResponse struct {
	ProductID   string          `json:"product_id"`
	DisplayName string          `json:"display_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type DocumentResponse struct {
	ID                  string                 `json:"id"`
	DocumentNumber      string                 `json:"document_number"`
	Type                string                 `json:"type"`
	Date                string                 `json:"date"`
	SourceLocation      *string                `json:"source_location,omitempty"`
	DestinationLocation *string                `json:"destination_location,omitempty"`
	Location            *string                `json:"location,omitempty"`
	SupplierID          *string                `json:"supplier_id,omitempty"`
	SupplierName        string                 `json:"supplier_name,omitempty"`
	DiscountPercent     decimal.Decimal        `json:"discount_percent"`
	TaxPercent          decimal.Decimal        `json:"tax_percent"`
	FreightAmount       decimal.Decimal        `json:"freight_amount"`
	Subtotal            decimal.Decimal        `json:"subtotal"`
	DiscountAmount      decimal.Decimal        `json:"discount_amount"`
	TaxAmount           decimal.Decimal        `json:"tax_amount"`
	GrandTotal          decimal.Decimal        `json:"grand_total"`
	TotalQuantity       decimal.Decimal        `json:"total_quantity"`
	Notes               *string                `json:"notes,omitempty"`
	Lines               []DocumentLineResponse `json:"lines"`
	CreatedAt           string                 `json:"created_at"`
}

type DocumentListResponse struct {
	Data  []DocumentResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
