package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one catalog entry. RetailPrice is what the product sells for;
// CostPrice is the last known purchase cost. Unit defaulting for document
// lines follows retail → cost → zero.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU         string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	RetailPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category     `gorm:"foreignKey:CategoryID"`
	Units    []ProductUnit `gorm:"foreignKey:ProductID"`
}

// ProductUnit declares one selectable unit of measure for a product with its
// conversion factor to the base unit. A product with no rows here is treated
// as having the single implied unit "Unit" with factor 1.
type ProductUnit struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Unit             string          `gorm:"type:varchar(30);not null"`
	ConversionFactor decimal.Decimal `gorm:"type:decimal(12,4);not null;default:1"`
	IsDefault        bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time
}
