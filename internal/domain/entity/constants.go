package entity

// Direction of the synthesized cash flow relative to the generator's own company.
type Direction string

const (
	DirectionPayables    Direction = "payables"    // own company pays a counterparty
	DirectionReceivables Direction = "receivables" // a counterparty pays own company
)

// Valid reports whether d is one of the two supported directions.
func (d Direction) Valid() bool {
	return d == DirectionPayables || d == DirectionReceivables
}

// CaseType identifies one of the reconciliation scenarios the engine can produce.
type CaseType string

const (
	CasePerfectMatch              CaseType = "perfect_match"
	CaseDiscount1Percent          CaseType = "discount_1_percent"
	CaseDiscount2Percent          CaseType = "discount_2_percent"
	CaseDiscount3Percent          CaseType = "discount_3_percent"
	CaseFXGain                    CaseType = "fx_gain"
	CaseFXLoss                    CaseType = "fx_loss"
	CasePartialMatchNoDescription CaseType = "partial_match_no_description"
	CasePartialMatchAmountDiff    CaseType = "partial_match_amount_mismatch"
	CasePartialMatchDateFar       CaseType = "partial_match_date_far"
	CaseGroupPayment              CaseType = "group_payment"
)

// AllCaseTypes lists every supported case type in canonical order.
var AllCaseTypes = []CaseType{
	CasePerfectMatch,
	CaseDiscount1Percent,
	CaseDiscount2Percent,
	CaseDiscount3Percent,
	CaseFXGain,
	CaseFXLoss,
	CasePartialMatchNoDescription,
	CasePartialMatchAmountDiff,
	CasePartialMatchDateFar,
	CaseGroupPayment,
}

// Valid reports whether c is a known case type.
func (c CaseType) Valid() bool {
	for _, known := range AllCaseTypes {
		if c == known {
			return true
		}
	}
	return false
}

// MatchField tags a reconciliation signal that a test case is engineered
// to satisfy or violate.
type MatchField string

const (
	FieldCounterparty  MatchField = "counterparty"
	FieldAmount        MatchField = "amount"
	FieldInvoiceNumber MatchField = "invoice_number"
	FieldDateProximity MatchField = "date_proximity"
	FieldDescription   MatchField = "description"
	FieldDate          MatchField = "date"

	// Group-payment analogues.
	FieldTotalAmount    MatchField = "total_amount"
	FieldInvoiceNumbers MatchField = "invoice_numbers"
)

// Invoice number prefixes by direction.
const (
	PrefixReceivable = "INV"
	PrefixPayable    = "BILL"
)

// Currency is fixed for all generated documents.
const Currency = "EUR"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"
