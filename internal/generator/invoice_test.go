package generator

import (
	"math"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

var invoiceNumberPattern = regexp.MustCompile(`^(INV|BILL)-\d{4}-\d{4}$`)

func TestInvoiceSynthesizer_Generate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	synth := NewInvoiceSynthesizer(rng)
	party := NewPartyGenerator(rng)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	supplier := party.Company()
	customer := party.Company()

	for i := 0; i < 200; i++ {
		inv := synth.Generate(entity.PrefixReceivable, 100+i, start, end, supplier, customer)

		require.True(t, invoiceNumberPattern.MatchString(inv.Number), "number %q", inv.Number)

		assert.False(t, inv.IssueDate.Before(start), "issue date before range start")
		assert.False(t, inv.IssueDate.After(end), "issue date after range end")

		termDays := int(inv.DueDate.Sub(inv.IssueDate).Hours() / 24)
		assert.GreaterOrEqual(t, termDays, 14)
		assert.LessOrEqual(t, termDays, 30)

		require.NotEmpty(t, inv.Items)
		assert.LessOrEqual(t, len(inv.Items), 5)
		for _, item := range inv.Items {
			assert.GreaterOrEqual(t, item.Quantity, 1)
			assert.LessOrEqual(t, item.Quantity, 10)
			assert.GreaterOrEqual(t, item.UnitPrice, 0.0)
			assert.InDelta(t, item.UnitPrice, math.Round(item.UnitPrice*100)/100, 1e-9, "unit price not 2-decimal")
			assert.Contains(t, []float64{0, 19}, item.TaxRate)
		}

		assert.Equal(t, entity.Currency, inv.Currency)
		assert.InDelta(t, inv.Total, math.Round(inv.Total*100)/100, 1e-9, "total not 2-decimal")
		assert.InDelta(t, inv.Subtotal+inv.TaxTotal, inv.Total, 0.01+1e-9,
			"total drifts more than a cent from subtotal+tax")
	}
}

func TestComputeTotals(t *testing.T) {
	items := []entity.InvoiceItem{
		{Name: "A", Quantity: 2, UnitPrice: 100.10, TaxRate: 19},
		{Name: "B", Quantity: 1, UnitPrice: 49.99, TaxRate: 0},
		{Name: "C", Quantity: 3, UnitPrice: 33.33, TaxRate: 19},
	}

	subtotal, taxTotal, total := computeTotals(items)

	// 200.20 + 49.99 + 99.99
	assert.Equal(t, 350.18, subtotal)
	// 0.19*(200.20+99.99) = 57.0361 -> 57.04
	assert.Equal(t, 57.04, taxTotal)
	// 350.18 + 57.0361 = 407.2161 -> 407.22
	assert.Equal(t, 407.22, total)
}

func TestComputeTotals_SingleTaxFreeItem(t *testing.T) {
	subtotal, taxTotal, total := computeTotals([]entity.InvoiceItem{
		{Name: "A", Quantity: 4, UnitPrice: 25.00, TaxRate: 0},
	})

	assert.Equal(t, 100.00, subtotal)
	assert.Equal(t, 0.00, taxTotal)
	assert.Equal(t, 100.00, total)
}

func TestInvoice_SequenceNumber(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"INV-2025-0123", 123},
		{"BILL-2024-0001", 1},
		{"INV-2025-9999", 9999},
		{"garbage", 0},
		{"INV-", 0},
		{"INV-2025-12x4", 0},
		{"", 0},
	}

	for _, tt := range tests {
		inv := entity.Invoice{Number: tt.number}
		assert.Equal(t, tt.want, inv.SequenceNumber(), "number %q", tt.number)
	}
}
