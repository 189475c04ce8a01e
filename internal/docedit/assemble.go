package docedit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentSnapshot is the frozen result of a successful save: header fields,
// the valid lines, and the totals they produced. It is immutable once built;
// the service layer maps it onto the persisted record.
type DocumentSnapshot struct {
	Type                DocType
	DocumentNumber      string
	Date                time.Time
	SourceLocation      string
	DestinationLocation string
	Location            string
	SupplierID          *uuid.UUID
	DiscountPercent     decimal.Decimal
	TaxPercent          decimal.Decimal
	FreightAmount       decimal.Decimal
	Notes               string
	Lines               []LineItem
	Totals              Totals
}

// Validate checks the save preconditions for the session's document type.
// It returns a *ValidationError naming the failure, or nil when the session
// can be assembled.
func (s *Session) Validate() error {
	valid := 0
	for _, l := range s.lines {
		if l.savable() {
			valid++
		}
	}
	if valid == 0 {
		return errNoValidLines()
	}

	cfg := typeConfigs[s.Type]
	if cfg.dualLocation {
		if s.Header.SourceLocation == "" {
			return errMissingLocation("source_location")
		}
		if s.Header.DestinationLocation == "" {
			return errMissingLocation("destination_location")
		}
	} else if s.Header.Location == "" {
		return errMissingLocation("location")
	}
	if cfg.requiresSupplier && s.Header.SupplierID == nil {
		return errMissingSupplier()
	}
	return nil
}

// Assemble validates the session and freezes it into a DocumentSnapshot.
// Placeholder lines (no product, or zero quantity) are silently dropped from
// the snapshot — they block nothing as long as at least one valid line
// exists. seq is the caller-allocated per-type sequence for the document
// number; now supplies the year stamp. The session itself is left untouched:
// the caller resets it only after the snapshot has been durably persisted.
func (s *Session) Assemble(seq int64, now time.Time) (*DocumentSnapshot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	lines := make([]LineItem, 0, len(s.lines))
	for _, l := range s.lines {
		if l.savable() {
			lines = append(lines, *l)
		}
	}

	return &DocumentSnapshot{
		Type:                s.Type,
		DocumentNumber:      GenerateDocumentNumber(s.Type.Prefix(), now.Year(), seq),
		Date:                s.Header.Date,
		SourceLocation:      s.Header.SourceLocation,
		DestinationLocation: s.Header.DestinationLocation,
		Location:            s.Header.Location,
		SupplierID:          s.Header.SupplierID,
		DiscountPercent:     s.Header.DiscountPercent,
		TaxPercent:          s.Header.TaxPercent,
		FreightAmount:       s.Header.FreightAmount,
		Notes:               s.Header.Notes,
		Lines:               lines,
		Totals:              s.Totals(),
	}, nil
}
