package docedit

import "fmt"

// GenerateDocumentNumber builds the human-readable document number:
// type prefix, four-digit year, dash, zero-padded sequence —
// e.g. GRN2026-0042. Uniqueness is enforced by the persistence layer
// (per-type-per-year sequence plus a unique index on the column).
func GenerateDocumentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s%04d-%04d", prefix, year, seq)
}
