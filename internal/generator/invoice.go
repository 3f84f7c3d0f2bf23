package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// Payment-terms bounds in days after the issue date.
const (
	minPaymentTermDays = 14
	maxPaymentTermDays = 30
)

var invoiceNotes = []string{
	"",
	"Thank you for your business.",
	"Payable without deduction.",
	"Please quote the invoice number with your payment.",
}

// InvoiceSynthesizer builds single invoices with randomized line items
// and independently rounded totals.
type InvoiceSynthesizer struct {
	rng *rand.Rand
}

// NewInvoiceSynthesizer returns a synthesizer drawing from rng.
func NewInvoiceSynthesizer(rng *rand.Rand) *InvoiceSynthesizer {
	return &InvoiceSynthesizer{rng: rng}
}

// Generate builds one invoice numbered "{prefix}-{year}-{seq}" with an
// issue date uniform over the inclusive [start,end] day range and a due
// date 14 to 30 days later. The year is the issue date's year.
func (s *InvoiceSynthesizer) Generate(prefix string, seq int, start, end time.Time, supplier, customer entity.Company) entity.Invoice {
	issue := s.randomDate(start, end)
	due := issue.AddDate(0, 0, randIntInclusive(s.rng, minPaymentTermDays, maxPaymentTermDays))

	items := s.items()
	subtotal, taxTotal, total := computeTotals(items)

	return entity.Invoice{
		ID:        uuid.New(),
		Number:    fmt.Sprintf("%s-%d-%04d", prefix, issue.Year(), seq),
		IssueDate: issue,
		DueDate:   due,
		Supplier:  supplier,
		Customer:  customer,
		Items:     items,
		Subtotal:  subtotal,
		TaxTotal:  taxTotal,
		Total:     total,
		Currency:  entity.Currency,
		Note:      invoiceNotes[s.rng.Intn(len(invoiceNotes))],
	}
}

// randomDate draws uniformly among the integer day offsets between
// start and end, both inclusive.
func (s *InvoiceSynthesizer) randomDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.rng.Intn(days+1))
}

func (s *InvoiceSynthesizer) items() []entity.InvoiceItem {
	count := randIntInclusive(s.rng, 1, 5)
	items := make([]entity.InvoiceItem, 0, count)
	for i := 0; i < count; i++ {
		var p product
		if s.rng.Float64() < 0.7 {
			p = productCatalog[s.rng.Intn(len(productCatalog))]
		} else {
			p = generatedProduct(s.rng)
		}

		price := decimal.NewFromFloat(p.basePrice * uniformFloat(s.rng, 0.8, 1.2)).Round(2)

		taxRate := 19.0
		if s.rng.Intn(3) == 0 {
			taxRate = 0
		}

		items = append(items, entity.InvoiceItem{
			Name:      p.name,
			Quantity:  randIntInclusive(s.rng, 1, 10),
			UnitPrice: price.InexactFloat64(),
			TaxRate:   taxRate,
		})
	}
	return items
}

// computeTotals rounds the three sums independently: subtotal and tax
// total from their unrounded running sums, and the grand total from
// the unrounded subtotal+tax sum. Total can therefore differ from
// Subtotal+TaxTotal by up to 0.01; that discrepancy is part of the
// contract (see the Invoice doc comment).
func computeTotals(items []entity.InvoiceItem) (subtotal, taxTotal, total float64) {
	sub := decimal.Zero
	tax := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sub = sub.Add(line)
		tax = tax.Add(line.Mul(decimal.NewFromFloat(item.TaxRate)).Div(decimal.NewFromInt(100)))
	}
	return sub.Round(2).InexactFloat64(),
		tax.Round(2).InexactFloat64(),
		sub.Add(tax).Round(2).InexactFloat64()
}

// randIntInclusive draws a uniform integer in [min,max].
func randIntInclusive(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// uniformFloat draws a uniform float in [min,max).
func uniformFloat(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
