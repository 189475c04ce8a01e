package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Name       string `form:"name"`
	SKU        string `form:"sku"`
	CategoryID string `form:"category_id"`
	Active     string `form:"active"` // "false" = inactive, "all" = everything, default active
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ───────────────────────────────────────────────────────────

type ProductUnitRequest struct {
	Unit             string          `json:"unit"              validate:"required"`
	ConversionFactor decimal.Decimal `json:"conversion_factor" validate:"required"`
	IsDefault        bool            `json:"is_default"`
}

type CreateProductRequest struct {
	SKU         string               `json:"sku"          validate:"required"`
	Name        string               `json:"name"         validate:"required"`
	Description *string              `json:"description"`
	CategoryID  *string              `json:"category_id"  validate:"omitempty,uuid"`
	CostPrice   decimal.Decimal      `json:"cost_price"   validate:"min=0"`
	RetailPrice decimal.Decimal      `json:"retail_price" validate:"min=0"`
	Units       []ProductUnitRequest `json:"units"        validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Name        string               `json:"name"         validate:"required"`
	Description *string              `json:"description"`
	CategoryID  *string              `json:"category_id"  validate:"omitempty,uuid"`
	CostPrice   decimal.Decimal      `json:"cost_price"   validate:"min=0"`
	RetailPrice decimal.Decimal      `json:"retail_price" validate:"min=0"`
	Units       []ProductUnitRequest `json:"units"        validate:"omitempty,dive"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type ProductUnitResponse struct {
	Unit             string          `json:"unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	IsDefault        bool            `json:"is_default"`
}

type ProductResponse struct {
	ID          string                `json:"id"`
	SKU         string                `json:"sku"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	CategoryID  *string               `json:"category_id"`
	Category    string                `json:"category,omitempty"`
	CostPrice   decimal.Decimal       `json:"cost_price"`
	RetailPrice decimal.Decimal       `json:"retail_price"`
	Units       []ProductUnitResponse `json:"units"`
	Active      bool                  `json:"active"`
	CreatedAt   string                `json:"created_at"`
}
