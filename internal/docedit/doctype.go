// Package docedit implements the line-item document editor engine shared by
// the stock transfer, stock adjustment and goods-received-note workflows.
// One editing Session owns an ordered registry of line items plus the document
// header, keeps derived totals consistent after every mutation, and freezes
// into an immutable snapshot on save.
package docedit

// DocType selects the per-document-type behavior of the engine: which header
// fields are required at save time and which prefix the document number carries.
type DocType string

const (
	StockTransfer   DocType = "stock_transfer"
	StockAdjustment DocType = "stock_adjustment"
	GoodsReceived   DocType = "goods_received"
)

type typeConfig struct {
	prefix string
	// dualLocation documents (transfers) require both source and destination;
	// the rest require the single Location field.
	dualLocation     bool
	requiresSupplier bool
}

var typeConfigs = map[DocType]typeConfig{
	StockTransfer:   {prefix: "ST", dualLocation: true},
	StockAdjustment: {prefix: "SA"},
	GoodsReceived:   {prefix: "GRN", requiresSupplier: true},
}

// Valid reports whether t is one of the supported document types.
func (t DocType) Valid() bool {
	_, ok := typeConfigs[t]
	return ok
}

// Prefix returns the document-number prefix for the type ("ST", "SA", "GRN").
func (t DocType) Prefix() string { return typeConfigs[t].prefix }
