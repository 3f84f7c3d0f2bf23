// Package export renders assembled suites into their delivery formats:
// the canonical semicolon CSV, an XLSX transaction sheet and the zip
// bundle combining everything with the rendered invoice documents.
package export

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// CSVHeader is the fixed, unquoted header row of the canonical format.
const CSVHeader = "date;counterparty;description;amount_eur"

// TransactionsCSV renders one row per test case (group cases contribute
// the aggregate transaction only), ordered ascending by the date field
// as a string compare — valid because dates are fixed-width YYYY-MM-DD.
// Ties keep generation order (stable sort).
//
// Fields are not escaped: counterparty and description come from
// controlled vocabulary that never contains the delimiter. A field
// containing ';' would silently produce a malformed row; quoting would
// change the literal byte format consumers pin against.
func TransactionsCSV(cases []entity.TestCase) string {
	ordered := sortedByDate(cases)

	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for _, tc := range ordered {
		tx := tc.Transaction
		b.WriteString(tx.Date.Format(entity.DateLayout))
		b.WriteByte(';')
		b.WriteString(tx.Counterparty)
		b.WriteByte(';')
		b.WriteString(tx.Description)
		b.WriteByte(';')
		b.WriteString(decimal.NewFromFloat(tx.Amount).StringFixed(2))
		b.WriteByte('\n')
	}
	return b.String()
}

// sortedByDate returns the cases in CSV row order without mutating the
// input slice.
func sortedByDate(cases []entity.TestCase) []entity.TestCase {
	ordered := make([]entity.TestCase, len(cases))
	copy(ordered, cases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Transaction.Date.Format(entity.DateLayout) <
			ordered[j].Transaction.Date.Format(entity.DateLayout)
	})
	return ordered
}
