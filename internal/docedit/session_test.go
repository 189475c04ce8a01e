package docedit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubResolver is an in-memory ProductResolver keyed by product id.
type stubResolver struct {
	products map[uuid.UUID]*ResolvedProduct
}

func newStubResolver() *stubResolver {
	return &stubResolver{products: make(map[uuid.UUID]*ResolvedProduct)}
}

func (r *stubResolver) add(name string, price float64, units ...UnitOption) uuid.UUID {
	id := uuid.New()
	if len(units) == 0 {
		units = []UnitOption{{Unit: "Unit", ConversionFactor: decimal.NewFromInt(1), IsDefault: true}}
	}
	r.products[id] = &ResolvedProduct{
		ID:               id,
		Name:             name,
		Units:            units,
		DefaultUnitPrice: decimal.NewFromFloat(price),
	}
	return id
}

func (r *stubResolver) LookupProduct(_ context.Context, id uuid.UUID) (*ResolvedProduct, error) {
	return r.products[id], nil
}

var _ ProductResolver = (*stubResolver)(nil)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ── Line registry ─────────────────────────────────────────────────────────────

func TestNewSessionSeedsOneBlankLine(t *testing.T) {
	s := NewSession(StockTransfer, newStubResolver())

	require.Equal(t, 1, s.LineCount())
	line := s.Lines()[0]
	assert.Nil(t, line.ProductID)
	assert.True(t, line.Quantity.IsZero())
	assert.True(t, line.UnitPrice.IsZero())
	assert.True(t, line.LineTotal.IsZero())
}

func TestLineTotalFollowsQuantityAndPrice(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Basmati Rice 5kg", 12.50)
	s := NewSession(StockAdjustment, r)
	lineID := s.Lines()[0].ID

	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("3"))
	require.True(t, s.Lines()[0].LineTotal.Equal(dec("37.5")), "3 × 12.50 = 37.50")

	s.SetUnitPrice(lineID, dec("10"))
	assert.True(t, s.Lines()[0].LineTotal.Equal(dec("30")))

	s.SetQuantity(lineID, dec("0"))
	assert.True(t, s.Lines()[0].LineTotal.IsZero())
}

func TestNegativeInputCoercesToZero(t *testing.T) {
	s := NewSession(StockAdjustment, newStubResolver())
	lineID := s.Lines()[0].ID

	s.SetQuantity(lineID, dec("-4"))
	s.SetUnitPrice(lineID, dec("-9.99"))

	line := s.Lines()[0]
	assert.True(t, line.Quantity.IsZero())
	assert.True(t, line.UnitPrice.IsZero())
}

func TestRemoveLineByID(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Olive Oil 1L", 8)
	s := NewSession(StockTransfer, r)

	first := s.Lines()[0].ID
	second := s.AddLine()
	s.SelectProduct(context.Background(), second, pid)
	s.SetQuantity(second, dec("2"))

	require.True(t, s.RemoveLine(second))
	require.Equal(t, 1, s.LineCount())
	assert.Equal(t, first, s.Lines()[0].ID)
	assert.True(t, s.Totals().Subtotal.IsZero(), "totals recomputed without the removed line")

	// Unknown id is a no-op.
	before := s.Totals()
	assert.False(t, s.RemoveLine(uuid.New()))
	assert.Equal(t, before, s.Totals())
}

func TestRemovingLastLineIsPermitted(t *testing.T) {
	s := NewSession(GoodsReceived, newStubResolver())
	require.True(t, s.RemoveLine(s.Lines()[0].ID))
	assert.Equal(t, 0, s.LineCount())
}

func TestPatchUnknownLineIsNoOp(t *testing.T) {
	s := NewSession(StockTransfer, newStubResolver())
	s.SetQuantity(uuid.New(), dec("5"))
	s.SetUnitPrice(uuid.New(), dec("5"))
	assert.True(t, s.Lines()[0].LineTotal.IsZero())
}

// ── Product selection ─────────────────────────────────────────────────────────

func TestSelectProductDefaultsLine(t *testing.T) {
	r := newStubResolver()
	kg := UnitOption{Unit: "kg", ConversionFactor: decimal.NewFromInt(1000), IsDefault: true}
	g := UnitOption{Unit: "g", ConversionFactor: decimal.NewFromInt(1)}
	pid := r.add("Flour", 4.20, g, kg)

	s := NewSession(GoodsReceived, r)
	lineID := s.Lines()[0].ID
	s.SetQuantity(lineID, dec("2"))
	s.SelectProduct(context.Background(), lineID, pid)

	line := s.Lines()[0]
	require.NotNil(t, line.ProductID)
	assert.Equal(t, pid, *line.ProductID)
	assert.Equal(t, "Flour", line.DisplayName)
	assert.Equal(t, "kg", line.Unit, "default-flagged unit wins")
	assert.True(t, line.ConversionFactor.Equal(dec("1000")))
	assert.True(t, line.UnitPrice.Equal(dec("4.2")))
	assert.True(t, line.LineTotal.Equal(dec("8.4")), "recomputes with the existing quantity")
}

func TestSelectUnknownProductLeavesLineUntouched(t *testing.T) {
	s := NewSession(StockTransfer, newStubResolver())
	lineID := s.Lines()[0].ID

	s.SelectProduct(context.Background(), lineID, uuid.New())

	line := s.Lines()[0]
	assert.Nil(t, line.ProductID)
	assert.Empty(t, line.DisplayName)
}

func TestSetUnitSwitchesConversionFactor(t *testing.T) {
	r := newStubResolver()
	box := UnitOption{Unit: "box", ConversionFactor: decimal.NewFromInt(24), IsDefault: true}
	can := UnitOption{Unit: "can", ConversionFactor: decimal.NewFromInt(1)}
	pid := r.add("Soda Can", 1.10, box, can)

	s := NewSession(StockTransfer, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)

	s.SetUnit(lineID, "can")
	line := s.Lines()[0]
	assert.Equal(t, "can", line.Unit)
	assert.True(t, line.ConversionFactor.Equal(dec("1")))

	// Unknown unit name is ignored.
	s.SetUnit(lineID, "pallet")
	assert.Equal(t, "can", s.Lines()[0].Unit)
}

// ── Totals ────────────────────────────────────────────────────────────────────

func TestTotalsFormulas(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Catering Tray", 100)
	s := NewSession(GoodsReceived, r)

	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("10")) // subtotal 1000

	s.SetDiscountPercent(dec("10"))
	s.SetTaxPercent(dec("5"))
	s.SetFreight(dec("50"))

	totals := s.Totals()
	assert.True(t, totals.Subtotal.Equal(dec("1000")))
	assert.True(t, totals.DiscountAmount.Equal(dec("100")))
	assert.True(t, totals.TaxableAmount.Equal(dec("900")))
	assert.True(t, totals.TaxAmount.Equal(dec("45")))
	assert.True(t, totals.GrandTotal.Equal(dec("995")))
	assert.True(t, totals.TotalQuantity.Equal(dec("10")))
	assert.Equal(t, 1, totals.LineCount)
}

func TestPlaceholderLinesContributeNothing(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Napkins", 2)
	s := NewSession(StockAdjustment, r)

	// Stray values on a product-less line must be excluded defensively.
	ghost := s.Lines()[0].ID
	s.SetQuantity(ghost, dec("99"))
	s.SetUnitPrice(ghost, dec("99"))

	real := s.AddLine()
	s.SelectProduct(context.Background(), real, pid)
	s.SetQuantity(real, dec("5"))

	totals := s.Totals()
	assert.True(t, totals.Subtotal.Equal(dec("10")))
	assert.True(t, totals.TotalQuantity.Equal(dec("5")))
	assert.Equal(t, 1, totals.LineCount)
}

func TestTotalsRecomputeIsIdempotent(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Espresso Beans", 17.35)
	s := NewSession(StockTransfer, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("7"))
	s.SetDiscountPercent(dec("12.5"))
	s.SetTaxPercent(dec("8"))

	first := s.Totals()
	second := s.Totals()
	assert.Equal(t, first, second)
}

// ── Session lifecycle ─────────────────────────────────────────────────────────

func TestResetReturnsToOpeningState(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Tomato Sauce", 3)
	s := NewSession(GoodsReceived, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("4"))
	s.SetLocation("Main Kitchen")
	s.SetDiscountPercent(dec("5"))
	s.AddLine()

	s.Reset()

	require.Equal(t, 1, s.LineCount())
	assert.Nil(t, s.Lines()[0].ProductID)
	assert.Empty(t, s.Header.Location)
	assert.True(t, s.Header.DiscountPercent.IsZero())
	assert.True(t, s.Totals().Subtotal.IsZero())
	assert.WithinDuration(t, time.Now(), s.Header.Date, time.Minute)
}
