package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a goods supplier with commercial data. Email, when
// present, receives the GRN voucher PDF after a save.
type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	TaxID        *string   `gorm:"type:varchar(30);column:tax_id"`
	Phone        *string
	Email        *string
	Address      *string
	PaymentTerms *string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
