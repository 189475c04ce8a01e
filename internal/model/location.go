package model

import (
	"time"

	"github.com/google/uuid"
)

// Location is a named stock location (warehouse, kitchen, branch floor).
// Type: "warehouse" | "kitchen" | "branch"
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'warehouse'"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
