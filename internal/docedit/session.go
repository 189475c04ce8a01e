package docedit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one row of the document being edited. LineTotal is derived and
// is recomputed inside every mutation that touches Quantity or UnitPrice —
// callers never observe a stale total.
type LineItem struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        *uuid.UUID      `json:"product_id"`
	DisplayName      string          `json:"display_name"`
	Unit             string          `json:"unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	UnitOptions      []UnitOption    `json:"unit_options"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// countsTowardTotals reports whether the line participates in aggregates.
// Placeholder rows without a product contribute nothing even if they somehow
// hold stray quantity or price values.
func (l *LineItem) countsTowardTotals() bool { return l.ProductID != nil }

// savable reports whether the line survives into the persisted snapshot.
func (l *LineItem) savable() bool {
	return l.ProductID != nil && l.Quantity.IsPositive()
}

// Header holds the non-line fields of the document. Transfers use
// SourceLocation/DestinationLocation; adjustments and GRNs use Location.
type Header struct {
	Date                time.Time       `json:"date"`
	SourceLocation      string          `json:"source_location"`
	DestinationLocation string          `json:"destination_location"`
	Location            string          `json:"location"`
	SupplierID          *uuid.UUID      `json:"supplier_id"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	TaxPercent          decimal.Decimal `json:"tax_percent"`
	FreightAmount       decimal.Decimal `json:"freight_amount"`
	Notes               string          `json:"notes"`
}

// Session is one open document editor: the line registry plus the header.
// It is single-owner and not safe for concurrent use; the service layer
// serializes access per session.
type Session struct {
	ID        uuid.UUID
	Type      DocType
	Header    Header
	lines     []*LineItem
	resolver  ProductResolver
	CreatedAt time.Time
}

// NewSession opens a fresh editing session seeded with one blank line, so the
// user always has a row to fill in.
func NewSession(t DocType, resolver ProductResolver) *Session {
	s := &Session{
		ID:        uuid.New(),
		Type:      t,
		resolver:  resolver,
		CreatedAt: time.Now(),
	}
	s.Header.Date = s.CreatedAt
	s.AddLine()
	return s
}

// Lines returns the registry in insertion order. The returned slice is a
// copy; line values reflect the state at call time.
func (s *Session) Lines() []LineItem {
	out := make([]LineItem, len(s.lines))
	for i, l := range s.lines {
		out[i] = *l
	}
	return out
}

// LineCount returns the number of rows currently in the registry,
// placeholders included.
func (s *Session) LineCount() int { return len(s.lines) }

// AddLine appends a blank placeholder row and returns its id.
func (s *Session) AddLine() uuid.UUID {
	l := &LineItem{
		ID:               uuid.New(),
		ConversionFactor: decimal.Zero,
		Quantity:         decimal.Zero,
		UnitPrice:        decimal.Zero,
		LineTotal:        decimal.Zero,
	}
	s.lines = append(s.lines, l)
	return l.ID
}

// RemoveLine deletes the addressed row. Removing an unknown id is a no-op;
// removing the last remaining row is permitted.
func (s *Session) RemoveLine(lineID uuid.UUID) bool {
	for i, l := range s.lines {
		if l.ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) line(lineID uuid.UUID) *LineItem {
	for _, l := range s.lines {
		if l.ID == lineID {
			return l
		}
	}
	return nil
}

// SetQuantity patches the quantity of a line and recomputes its total.
// Negative input coerces to zero.
func (s *Session) SetQuantity(lineID uuid.UUID, qty decimal.Decimal) {
	l := s.line(lineID)
	if l == nil {
		return
	}
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	l.Quantity = qty
	l.LineTotal = l.Quantity.Mul(l.UnitPrice)
}

// SetUnitPrice patches the unit price of a line and recomputes its total.
// Negative input coerces to zero.
func (s *Session) SetUnitPrice(lineID uuid.UUID, price decimal.Decimal) {
	l := s.line(lineID)
	if l == nil {
		return
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	l.UnitPrice = price
	l.LineTotal = l.Quantity.Mul(l.UnitPrice)
}

// SetUnit switches the line to one of its resolved unit options, updating the
// conversion factor alongside. An unknown unit name is ignored.
func (s *Session) SetUnit(lineID uuid.UUID, unit string) {
	l := s.line(lineID)
	if l == nil {
		return
	}
	for _, opt := range l.UnitOptions {
		if opt.Unit == unit {
			l.Unit = opt.Unit
			l.ConversionFactor = opt.ConversionFactor
			return
		}
	}
}

// SelectProduct resolves the product and defaults the line in one atomic
// update: display name, unit options, default unit and conversion factor, and
// unit price, followed by a line-total recompute with the existing quantity.
// An unresolvable product leaves the line untouched.
func (s *Session) SelectProduct(ctx context.Context, lineID, productID uuid.UUID) {
	l := s.line(lineID)
	if l == nil {
		return
	}
	rp, err := s.resolver.LookupProduct(ctx, productID)
	if err != nil || rp == nil {
		return
	}
	du := rp.DefaultUnit()
	pid := rp.ID
	l.ProductID = &pid
	l.DisplayName = rp.Name
	l.UnitOptions = rp.Units
	l.Unit = du.Unit
	l.ConversionFactor = du.ConversionFactor
	l.UnitPrice = rp.DefaultUnitPrice
	l.LineTotal = l.Quantity.Mul(l.UnitPrice)
}

// ── Header setters ───────────────────────────────────────────────────────────

func (s *Session) SetDate(d time.Time)        { s.Header.Date = d }
func (s *Session) SetSourceLocation(v string) { s.Header.SourceLocation = v }
func (s *Session) SetDestination(v string)    { s.Header.DestinationLocation = v }
func (s *Session) SetLocation(v string)       { s.Header.Location = v }
func (s *Session) SetSupplier(id *uuid.UUID)  { s.Header.SupplierID = id }
func (s *Session) SetNotes(v string)          { s.Header.Notes = v }

func (s *Session) SetFreight(v decimal.Decimal) { s.Header.FreightAmount = coerceNonNegative(v) }

func (s *Session) SetDiscountPercent(v decimal.Decimal) { s.Header.DiscountPercent = v }
func (s *Session) SetTaxPercent(v decimal.Decimal)      { s.Header.TaxPercent = v }

func coerceNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Reset returns the session to its opening state: one blank line, header
// fields back to defaults. Called after a successful save.
func (s *Session) Reset() {
	s.lines = nil
	s.Header = Header{Date: time.Now()}
	s.AddLine()
}
