package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockDocument is the persisted snapshot of a saved editing session.
// Type: "stock_transfer" | "stock_adjustment" | "goods_received"
// Records are immutable once created — corrections are new documents,
// never partial patches.
type StockDocument struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentNumber string    `gorm:"uniqueIndex;not null"`
	Type           string    `gorm:"type:varchar(30);index;not null"`
	Date           time.Time `gorm:"not null"`
	// Transfers fill source/destination; adjustments and GRNs fill location.
	SourceLocation      *string
	DestinationLocation *string
	Location            *string
	SupplierID          *uuid.UUID      `gorm:"type:uuid;index"`
	DiscountPercent     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxPercent          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	FreightAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrandTotal          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalQuantity       decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Notes               *string
	CreatedByID         uuid.UUID `gorm:"type:uuid;not null"`
	// VoucherPath is relative to PDF_STORAGE_PATH, filled by the voucher worker.
	VoucherPath *string `gorm:"column:voucher_path"`
	CreatedAt   time.Time

	Supplier  *Supplier           `gorm:"foreignKey:SupplierID"`
	CreatedBy *User               `gorm:"foreignKey:CreatedByID"`
	Lines     []StockDocumentLine `gorm:"foreignKey:DocumentID"`
}

// TableName overrides GORM's pluralization (stock_documents is fine, but the
// explicit name guards against model renames drifting the schema).
func (StockDocument) TableName() string { return "stock_documents" }

// StockDocumentLine is one frozen line of a saved document.
type StockDocumentLine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`
	// DisplayName is denormalized so saved documents render without a catalog join.
	DisplayName      string          `gorm:"not null"`
	Unit             string          `gorm:"type:varchar(30);not null"`
	ConversionFactor decimal.Decimal `gorm:"type:decimal(12,4);not null;default:1"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (StockDocumentLine) TableName() string { return "stock_document_lines" }
