package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

func groupTestInvoices() []entity.Invoice {
	supplier := entity.Company{
		Name:           "TechNova GmbH",
		NameVariations: NameVariations("TechNova", "GmbH"),
	}
	customer := entity.Company{Name: "Eigene Firma GmbH"}

	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	totals := []float64{1000.00, 1500.50, 999.49}
	invoices := make([]entity.Invoice, 0, len(totals))
	for i, total := range totals {
		invoices = append(invoices, entity.Invoice{
			Number:    []string{"BILL-2025-0301", "BILL-2025-0302", "BILL-2025-0303"}[i],
			IssueDate: base.AddDate(0, 0, i*3),
			Supplier:  supplier,
			Customer:  customer,
			Total:     total,
			Currency:  entity.Currency,
		})
	}
	return invoices
}

func TestAggregateGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	invoices := groupTestInvoices()

	tx, meta := AggregateGroup(rng, invoices, entity.DirectionPayables)

	assert.Equal(t, -3499.99, tx.Amount)
	assert.Equal(t, 3499.99, meta.AdjustedAmount)
	assert.Equal(t, 3, meta.GroupedInvoices)
	assert.Equal(t, "Group payment covering 3 invoices", meta.AdjustmentReason)
	assert.Equal(t, "Batch Payment: BILL-2025-0301, BILL-2025-0302, BILL-2025-0303", tx.Description)

	latest := invoices[2].IssueDate
	gap := int(tx.Date.Sub(latest).Hours() / 24)
	assert.GreaterOrEqual(t, gap, 1)
	assert.LessOrEqual(t, gap, 7)

	assert.Equal(t, []entity.MatchField{
		entity.FieldCounterparty, entity.FieldTotalAmount,
		entity.FieldInvoiceNumbers, entity.FieldDateProximity,
	}, meta.MatchingFields)
	assert.Empty(t, meta.MismatchedFields)
}

func TestAggregateGroup_ReceivablesSign(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	invoices := groupTestInvoices()

	tx, _ := AggregateGroup(rng, invoices, entity.DirectionReceivables)
	assert.Equal(t, 3499.99, tx.Amount)
}

func TestAggregateGroup_CounterpartyIsSupplierSurfaceForm(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	invoices := groupTestInvoices()
	names := nameSet(invoices[0].Supplier)

	for i := 0; i < 50; i++ {
		tx, _ := AggregateGroup(rng, invoices, entity.DirectionPayables)
		_, ok := names[tx.Counterparty]
		require.True(t, ok, "counterparty %q not a supplier surface form", tx.Counterparty)
	}
}

func TestGroupInvoiceCount(t *testing.T) {
	rng := rand.New(rand.NewSource(24))

	sawTwo, sawThree := false, false
	for i := 0; i < 100; i++ {
		n := GroupInvoiceCount(rng)
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 3)
		if n == 2 {
			sawTwo = true
		}
		if n == 3 {
			sawThree = true
		}
	}
	assert.True(t, sawTwo)
	assert.True(t, sawThree)
}
