package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// Group payments cover between 2 and 3 invoices.
const (
	minGroupInvoices = 2
	maxGroupInvoices = 3
)

// GroupInvoiceCount draws the number of invoices a group payment will
// cover, uniform in {2,3}.
func GroupInvoiceCount(rng *rand.Rand) int {
	return randIntInclusive(rng, minGroupInvoices, maxGroupInvoices)
}

// AggregateGroup builds the single transaction covering the given
// invoices, which must share one counterparty and direction. The
// transaction is dated 1 to 7 days after the latest issue date, its
// amount is the signed sum of the invoice totals rounded once, and its
// description lists the invoice numbers in generation order.
func AggregateGroup(rng *rand.Rand, invoices []entity.Invoice, dir entity.Direction) (entity.BankTransaction, entity.CaseMetadata) {
	latest := invoices[0].IssueDate
	sum := decimal.Zero
	numbers := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		if inv.IssueDate.After(latest) {
			latest = inv.IssueDate
		}
		sum = sum.Add(decimal.NewFromFloat(inv.Total))
		numbers = append(numbers, inv.Number)
	}
	magnitude := sum.Round(2)

	tx := entity.BankTransaction{
		Date:         latest.AddDate(0, 0, randIntInclusive(rng, 1, 7)),
		Counterparty: RandomNameVariation(rng, counterpartyFor(invoices[0], dir)),
		Description:  "Batch Payment: " + strings.Join(numbers, ", "),
		Amount:       signedAmount(magnitude, dir),
	}

	meta := entity.CaseMetadata{
		OriginalAmount:   magnitude.InexactFloat64(),
		AdjustedAmount:   magnitude.InexactFloat64(),
		AdjustmentReason: fmt.Sprintf("Group payment covering %d invoices", len(invoices)),
		MatchingFields: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldTotalAmount,
			entity.FieldInvoiceNumbers, entity.FieldDateProximity,
		},
		MismatchedFields: []entity.MatchField{},
		GroupedInvoices:  len(invoices),
	}
	return tx, meta
}
