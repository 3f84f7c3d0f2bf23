package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// InvoiceRenderer turns one invoice into an opaque document artifact.
// It must not mutate the invoice.
type InvoiceRenderer func(inv entity.Invoice) ([]byte, error)

// Bundle packages a generated suite into a single zip: the canonical
// CSV, the XLSX sheet, the JSON-serialized suite, and one rendered
// document per invoice (group cases contribute every sub-invoice).
func Bundle(suite *entity.Suite, render InvoiceRenderer) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	if err := addFile(w, "transactions.csv", []byte(suite.CSV)); err != nil {
		return nil, err
	}

	xlsxData, err := TransactionsXLSX(suite.Cases)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction sheet: %w", err)
	}
	if err := addFile(w, "transactions.xlsx", xlsxData); err != nil {
		return nil, err
	}

	suiteJSON, err := json.MarshalIndent(suite, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize suite: %w", err)
	}
	if err := addFile(w, "suite.json", suiteJSON); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, tc := range suite.Cases {
		for _, inv := range tc.AllInvoices() {
			if _, ok := seen[inv.Number]; ok {
				continue
			}
			seen[inv.Number] = struct{}{}

			doc, err := render(inv)
			if err != nil {
				return nil, fmt.Errorf("failed to render invoice %s: %w", inv.Number, err)
			}
			if err := addFile(w, "invoices/"+inv.Number+".pdf", doc); err != nil {
				return nil, err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize bundle: %w", err)
	}
	return buf.Bytes(), nil
}

func addFile(w *zip.Writer, name string, data []byte) error {
	f, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s to bundle: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
