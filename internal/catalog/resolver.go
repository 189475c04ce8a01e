// Package catalog adapts the product catalog to the document editor's
// ProductResolver contract, applying the defaulting rules the editor
// depends on.
package catalog

import (
	"context"
	"errors"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/docedit"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFinder is the slice of the product repository the resolver needs.
type ProductFinder interface {
	FindByIDWithUnits(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// Resolver implements docedit.ProductResolver on top of the catalog.
type Resolver struct {
	products ProductFinder
}

func NewResolver(products ProductFinder) *Resolver {
	return &Resolver{products: products}
}

// LookupProduct resolves a product for line defaulting. A missing product
// yields (nil, nil) so the editor can no-op silently. Two fallback rules:
//
//   - a product with no declared unit configuration gets the single implied
//     unit "Unit" with conversion factor 1;
//   - the default unit price is the retail price when nonzero, else the cost
//     price, else zero. The order matters: retail price 0 with cost 250 must
//     default to 250.
func (r *Resolver) LookupProduct(ctx context.Context, id uuid.UUID) (*docedit.ResolvedProduct, error) {
	p, err := r.products.FindByIDWithUnits(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	units := make([]docedit.UnitOption, 0, len(p.Units))
	for _, u := range p.Units {
		units = append(units, docedit.UnitOption{
			Unit:             u.Unit,
			ConversionFactor: u.ConversionFactor,
			IsDefault:        u.IsDefault,
		})
	}
	if len(units) == 0 {
		units = []docedit.UnitOption{{
			Unit:             "Unit",
			ConversionFactor: decimal.NewFromInt(1),
			IsDefault:        true,
		}}
	}

	price := p.RetailPrice
	if price.IsZero() {
		price = p.CostPrice
	}

	return &docedit.ResolvedProduct{
		ID:               p.ID,
		Name:             p.Name,
		Units:            units,
		DefaultUnitPrice: price,
	}, nil
}

var _ docedit.ProductResolver = (*Resolver)(nil)
