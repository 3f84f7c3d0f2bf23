package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvoiceItem represents a line item on a synthesized invoice.
type InvoiceItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	TaxRate   float64 `json:"tax_rate"` // percent, 0 or 19
}

// Invoice is one synthesized invoice document.
//
// Subtotal, TaxTotal and Total are each rounded to 2 decimals
// independently from the unrounded running sums, so Total may differ
// from Subtotal+TaxTotal by up to 0.01. This mirrors how real
// invoicing software rounds and matching fixtures may depend on it;
// do not "fix" by recomputing Total from the rounded parts.
type Invoice struct {
	ID        uuid.UUID     `json:"id"`
	Number    string        `json:"number"` // {PREFIX}-{year}-{4-digit sequence}
	IssueDate time.Time     `json:"issue_date"`
	DueDate   time.Time     `json:"due_date"`
	Supplier  Company       `json:"supplier"`
	Customer  Company       `json:"customer"`
	Items     []InvoiceItem `json:"items"`
	Subtotal  float64       `json:"subtotal"`
	TaxTotal  float64       `json:"tax_total"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
	Note      string        `json:"note,omitempty"`
}

// SequenceNumber extracts the numeric sequence suffix from the invoice
// number. A malformed number yields 0 rather than an error: the value
// is cosmetic for downstream consumers (document references, sheet
// ordering) and must not abort a generation run.
func (inv *Invoice) SequenceNumber() int {
	idx := strings.LastIndex(inv.Number, "-")
	if idx < 0 || idx == len(inv.Number)-1 {
		return 0
	}
	n, err := strconv.Atoi(inv.Number[idx+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
