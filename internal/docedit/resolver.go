package docedit

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOption is one selectable unit of measure for a product, with the
// conversion factor to the product's base unit (e.g. 1000 for g→kg).
type UnitOption struct {
	Unit             string          `json:"unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	IsDefault        bool            `json:"is_default"`
}

// ResolvedProduct is the catalog view the engine needs to default a line
// when a product is selected. Implementations must guarantee Units is
// non-empty (falling back to the implied "Unit"/1 option) and that
// DefaultUnitPrice follows the retail→cost→zero chain.
type ResolvedProduct struct {
	ID               uuid.UUID
	Name             string
	Units            []UnitOption
	DefaultUnitPrice decimal.Decimal
}

// DefaultUnit returns the option flagged IsDefault, or the first option
// when none is flagged.
func (p *ResolvedProduct) DefaultUnit() UnitOption {
	for _, u := range p.Units {
		if u.IsDefault {
			return u
		}
	}
	return p.Units[0]
}

// ProductResolver looks a product up in the catalog. A nil result with a nil
// error means the product does not exist; the engine treats both nil and
// error results as "not found" and leaves the line untouched.
type ProductResolver interface {
	LookupProduct(ctx context.Context, id uuid.UUID) (*ResolvedProduct, error)
}
