package docedit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildValidTransfer(t *testing.T) (*Session, *stubResolver) {
	t.Helper()
	r := newStubResolver()
	pid := r.add("Chicken Breast 1kg", 6.80)
	s := NewSession(StockTransfer, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("12"))
	s.SetSourceLocation("Central Warehouse")
	s.SetDestination("Downtown Branch")
	return s, r
}

func TestAssembleHappyPath(t *testing.T) {
	s, _ := buildValidTransfer(t)

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	snap, err := s.Assemble(7, now)
	require.NoError(t, err)

	assert.Equal(t, "ST2026-0007", snap.DocumentNumber)
	assert.Equal(t, StockTransfer, snap.Type)
	assert.Equal(t, "Central Warehouse", snap.SourceLocation)
	assert.Equal(t, "Downtown Branch", snap.DestinationLocation)
	require.Len(t, snap.Lines, 1)
	assert.True(t, snap.Totals.Subtotal.Equal(dec("81.6")))
}

func TestAssembleRejectsEmptyDocument(t *testing.T) {
	s := NewSession(StockTransfer, newStubResolver())
	s.SetSourceLocation("A")
	s.SetDestination("B")

	_, err := s.Assemble(1, time.Now())
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonNoValidLines, verr.Reason)
}

func TestAssembleRejectsZeroQuantityOnlyLines(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Paper Cups", 0.15)
	s := NewSession(StockAdjustment, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	// quantity left at zero
	s.SetLocation("Bar")

	_, err := s.Assemble(1, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonNoValidLines, verr.Reason)
}

func TestAssembleNamesMissingLocationSide(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Lettuce", 1.20)

	s := NewSession(StockTransfer, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("1"))

	_, err := s.Assemble(1, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonMissingLocation, verr.Reason)
	assert.Equal(t, "source_location", verr.Field)

	s.SetSourceLocation("Warehouse")
	_, err = s.Assemble(1, time.Now())
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "destination_location", verr.Field)
}

func TestAssembleRequiresSingleLocation(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Sugar", 2)
	s := NewSession(StockAdjustment, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("3"))

	_, err := s.Assemble(1, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonMissingLocation, verr.Reason)
	assert.Equal(t, "location", verr.Field)
}

func TestAssembleRequiresSupplierForGRN(t *testing.T) {
	r := newStubResolver()
	pid := r.add("Coffee Beans", 14)
	s := NewSession(GoodsReceived, r)
	lineID := s.Lines()[0].ID
	s.SelectProduct(context.Background(), lineID, pid)
	s.SetQuantity(lineID, dec("2"))
	s.SetLocation("Dry Storage")

	_, err := s.Assemble(1, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonMissingSupplier, verr.Reason)

	supplierID := uuid.New()
	s.SetSupplier(&supplierID)
	snap, err := s.Assemble(3, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "GRN2026-0003", snap.DocumentNumber)
	require.NotNil(t, snap.SupplierID)
	assert.Equal(t, supplierID, *snap.SupplierID)
}

func TestAssembleDropsPlaceholderLines(t *testing.T) {
	s, r := buildValidTransfer(t)
	pid := r.add("Garlic", 0.90)

	second := s.AddLine()
	s.SelectProduct(context.Background(), second, pid)
	s.SetQuantity(second, dec("5"))
	s.AddLine() // stays a placeholder

	require.Equal(t, 3, s.LineCount())
	snap, err := s.Assemble(1, time.Now())
	require.NoError(t, err)
	assert.Len(t, snap.Lines, 2, "placeholder silently dropped")
}

func TestValidateDoesNotMutateSession(t *testing.T) {
	s, _ := buildValidTransfer(t)
	before := s.Lines()
	require.NoError(t, s.Validate())
	assert.Equal(t, before, s.Lines())
}

func TestGenerateDocumentNumber(t *testing.T) {
	assert.Equal(t, "ST2026-0001", GenerateDocumentNumber("ST", 2026, 1))
	assert.Equal(t, "SA2025-0123", GenerateDocumentNumber("SA", 2025, 123))
	assert.Equal(t, "GRN2026-12345", GenerateDocumentNumber("GRN", 2026, 12345))
}
