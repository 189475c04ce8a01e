package docedit

// Reason identifies why a save attempt was rejected. These are the only
// failure modes the engine surfaces; malformed input is coerced at the
// parsing boundary and unresolvable products fall back silently.
type Reason string

const (
	ReasonNoValidLines    Reason = "no_valid_lines"
	ReasonMissingLocation Reason = "missing_location"
	ReasonMissingSupplier Reason = "missing_supplier"
)

// ValidationError blocks a save and carries a user-facing message.
// Field names the offending header field when the reason is location-related
// ("source_location", "destination_location", "location").
type ValidationError struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func errNoValidLines() *ValidationError {
	return &ValidationError{
		Reason:  ReasonNoValidLines,
		Message: "document has no lines with a product and a positive quantity",
	}
}

func errMissingLocation(field string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonMissingLocation,
		Field:   field,
		Message: field + " is required",
	}
}

func errMissingSupplier() *ValidationError {
	return &ValidationError{
		Reason:  ReasonMissingSupplier,
		Field:   "supplier_id",
		Message: "supplier is required for goods received notes",
	}
}
