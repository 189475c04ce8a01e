package catalog

import (
	"context"
	"testing"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProductFinder struct {
	products map[uuid.UUID]*model.Product
}

func (s *stubProductFinder) FindByIDWithUnits(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func newFinder(products ...*model.Product) *stubProductFinder {
	f := &stubProductFinder{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func TestLookupMissingProductIsNilNil(t *testing.T) {
	r := NewResolver(newFinder())
	rp, err := r.LookupProduct(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, rp)
}

func TestLookupMapsDeclaredUnits(t *testing.T) {
	p := &model.Product{
		ID:          uuid.New(),
		Name:        "Flour 25kg Sack",
		RetailPrice: decimal.NewFromInt(30),
		Units: []model.ProductUnit{
			{Unit: "g", ConversionFactor: decimal.NewFromInt(1)},
			{Unit: "kg", ConversionFactor: decimal.NewFromInt(1000), IsDefault: true},
		},
	}
	r := NewResolver(newFinder(p))

	rp, err := r.LookupProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, rp)
	assert.Equal(t, "Flour 25kg Sack", rp.Name)
	require.Len(t, rp.Units, 2)
	assert.Equal(t, "kg", rp.DefaultUnit().Unit)
	assert.True(t, rp.DefaultUnit().ConversionFactor.Equal(decimal.NewFromInt(1000)))
}

func TestLookupFallsBackToImpliedUnit(t *testing.T) {
	p := &model.Product{ID: uuid.New(), Name: "Dish Soap", RetailPrice: decimal.NewFromInt(3)}
	r := NewResolver(newFinder(p))

	rp, err := r.LookupProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, rp.Units, 1)
	assert.Equal(t, "Unit", rp.Units[0].Unit)
	assert.True(t, rp.Units[0].ConversionFactor.Equal(decimal.NewFromInt(1)))
	assert.True(t, rp.Units[0].IsDefault)
}

func TestUnitPriceFallbackChain(t *testing.T) {
	cases := []struct {
		name   string
		retail string
		cost   string
		want   string
	}{
		{"retail wins when nonzero", "12.50", "8", "12.5"},
		{"cost wins when retail is zero", "0", "250", "250"},
		{"zero when both zero", "0", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			retail, _ := decimal.NewFromString(tc.retail)
			cost, _ := decimal.NewFromString(tc.cost)
			p := &model.Product{ID: uuid.New(), Name: "X", RetailPrice: retail, CostPrice: cost}
			rp, err := NewResolver(newFinder(p)).LookupProduct(context.Background(), p.ID)
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tc.want)
			assert.True(t, rp.DefaultUnitPrice.Equal(want))
		})
	}
}
