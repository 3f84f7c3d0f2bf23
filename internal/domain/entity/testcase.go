package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseMetadata records how a test case was engineered: which
// reconciliation signals align, which deliberately diverge, and the
// amount derivation that produced the transaction.
type CaseMetadata struct {
	OriginalAmount   float64      `json:"original_amount"`
	AdjustedAmount   float64      `json:"adjusted_amount"` // unsigned magnitude
	AdjustmentReason string       `json:"adjustment_reason,omitempty"`
	DiscountPercent  int          `json:"discount_percent,omitempty"`
	FXRate           float64      `json:"fx_rate,omitempty"`
	MatchingFields   []MatchField `json:"matching_fields"`
	MismatchedFields []MatchField `json:"mismatched_fields"`
	GroupedInvoices  int          `json:"grouped_invoice_count,omitempty"`
}

// TestCase pairs one bank transaction with the invoice(s) it is meant
// to reconcile against.
type TestCase struct {
	ID          uuid.UUID       `json:"id"`
	CaseType    CaseType        `json:"case_type"`
	Direction   Direction       `json:"direction"`
	Invoice     Invoice         `json:"invoice"`
	Invoices    []Invoice       `json:"invoices,omitempty"` // group payments only; Invoice is Invoices[0]
	Transaction BankTransaction `json:"transaction"`
	Metadata    CaseMetadata    `json:"metadata"`
}

// AllInvoices returns every invoice backing the case: the sub-invoices
// for a group payment, otherwise the single primary invoice.
func (tc *TestCase) AllInvoices() []Invoice {
	if len(tc.Invoices) > 0 {
		return tc.Invoices
	}
	return []Invoice{tc.Invoice}
}

// Suite is the result of one generation run.
type Suite struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Direction Direction  `json:"direction"`
	Cases     []TestCase `json:"cases"`
	CSV       string     `json:"csv"`
}
