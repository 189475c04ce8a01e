package dto

// ─── Supplier ───────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name         string  `json:"name"          validate:"required"`
	TaxID        *string `json:"tax_id"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Address      *string `json:"address"`
	PaymentTerms *string `json:"payment_terms"`
}

type UpdateSupplierRequest = CreateSupplierRequest

type SupplierResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TaxID        *string `json:"tax_id"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	PaymentTerms *string `json:"payment_terms"`
	Active       bool    `json:"active"`
}

// ─── Location ───────────────────────────────────────────────────────────────

type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=warehouse kitchen branch"`
}

type LocationResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// ─── Category ───────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Active      bool    `json:"active"`
}
