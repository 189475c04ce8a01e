package infra

// pdf.go — stock document voucher rendering using go-pdf/fpdf.
// Produces an A4 voucher with the document number, header fields, the line
// table (product, unit, quantity, unit price, line total) and the totals
// block. The output file is saved to storagePath/{document_number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"

	"github.com/go-pdf/fpdf"
)

var docTypeTitles = map[string]string{
	"stock_transfer":   "Stock Transfer",
	"stock_adjustment": "Stock Adjustment",
	"goods_received":   "Goods Received Note",
}

// GenerateVoucherPDF renders the voucher for a saved stock document.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateVoucherPDF(doc *model.StockDocument, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(storagePath, doc.DocumentNumber+".pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	title := docTypeTitles[doc.Type]
	if title == "" {
		title = doc.Type
	}

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, doc.DocumentNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, doc.Date.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(40, 5, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-40, 5, value, "", 1, "L", false, 0, "")
	}

	if doc.SourceLocation != nil {
		writeField("From", *doc.SourceLocation)
	}
	if doc.DestinationLocation != nil {
		writeField("To", *doc.DestinationLocation)
	}
	if doc.Location != nil {
		writeField("Location", *doc.Location)
	}
	if doc.Supplier != nil {
		writeField("Supplier", doc.Supplier.Name)
	}
	if doc.Notes != nil {
		writeField("Notes", *doc.Notes)
	}
	pdf.Ln(4)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // product
	col2 := contentW * 0.12 // unit
	col3 := contentW * 0.14 // qty
	col4 := contentW * 0.16 // unit price
	col5 := contentW * 0.18 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Unit", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range doc.Lines {
		name := line.DisplayName
		if r := []rune(name); len(r) > 40 {
			name = string(r[:37]) + "..."
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, line.Unit, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, line.Quantity.String(), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, line.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, line.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(col1+col2+col3, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, value, "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal:", doc.Subtotal.StringFixed(2), false)
	if !doc.DiscountAmount.IsZero() {
		writeTotal(fmt.Sprintf("Discount (%s%%):", doc.DiscountPercent.String()), "-"+doc.DiscountAmount.StringFixed(2), false)
	}
	if !doc.TaxAmount.IsZero() {
		writeTotal(fmt.Sprintf("Tax (%s%%):", doc.TaxPercent.String()), doc.TaxAmount.StringFixed(2), false)
	}
	if !doc.FreightAmount.IsZero() {
		writeTotal("Freight:", doc.FreightAmount.StringFixed(2), false)
	}
	writeTotal("Grand Total:", doc.GrandTotal.StringFixed(2), true)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
