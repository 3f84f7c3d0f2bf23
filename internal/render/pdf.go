// Package render produces the visual invoice documents that accompany
// a generated suite. Renderers read the entity graph and never mutate
// it.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// Invoice renders one invoice as an A4 PDF and returns the raw bytes.
func Invoice(inv entity.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Supplier block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, inv.Supplier.Name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, inv.Supplier.Address)
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("VAT: %s  |  IBAN: %s (%s)", inv.Supplier.VATID, inv.Supplier.IBAN, inv.Supplier.BankName))
	pdf.Ln(10)

	// Customer block
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Billed to:")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, inv.Customer.Name)
	pdf.Ln(5)
	pdf.Cell(0, 5, inv.Customer.Address)
	pdf.Ln(10)

	// Document header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 6, "Invoice "+inv.Number)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Issue date: %s    Due date: %s    Currency: %s",
		inv.IssueDate.Format(entity.DateLayout),
		inv.DueDate.Format(entity.DateLayout),
		inv.Currency))
	pdf.Ln(10)

	// Item table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(80, 6, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Tax %", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Line total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range inv.Items {
		lineTotal := float64(item.Quantity) * item.UnitPrice
		pdf.CellFormat(80, 6, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.0f", item.TaxRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", lineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals box
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f %s", inv.Subtotal, inv.Currency), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 6, "Tax", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f %s", inv.TaxTotal, inv.Currency), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f %s", inv.Total, inv.Currency), "", 1, "R", false, 0, "")

	if inv.Note != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, inv.Note)
		pdf.Ln(5)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 4, fmt.Sprintf("Document reference %04d", inv.SequenceNumber()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
	}
	return buf.Bytes(), nil
}
