package generator

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// adjustment is the outcome of a policy's amount rule: the unsigned
// transaction magnitude plus the metadata explaining the derivation.
type adjustment struct {
	magnitude       decimal.Decimal
	reason          string
	discountPercent int
	fxRate          float64
}

// casePolicy declares, for one simple case type, the transaction-date
// offset range relative to the issue date, the amount rule, the
// description template and the engineered match/mismatch tags.
type casePolicy struct {
	minOffsetDays int
	maxOffsetDays int
	adjust        func(rng *rand.Rand, dir entity.Direction, total decimal.Decimal) adjustment
	describe      func(rng *rand.Rand, invoiceNumber string) string
	matching      []entity.MatchField
	mismatched    []entity.MatchField
}

// Generic statement phrases for the no-description case: deliberately
// free of any invoice number.
var genericDescriptions = []string{
	"Payment",
	"Transfer",
	"Online Banking Transfer",
	"Wire transfer",
	"Monthly settlement",
	"Payment - thank you",
}

// simplePolicies is the closed policy table for the nine simple case
// types. The group type is handled by the aggregator, not this table.
var simplePolicies = map[entity.CaseType]casePolicy{
	entity.CasePerfectMatch: {
		minOffsetDays: 1, maxOffsetDays: 7,
		adjust:   identityAmount,
		describe: paymentDescription,
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldAmount,
			entity.FieldInvoiceNumber, entity.FieldDateProximity,
		},
	},
	entity.CaseDiscount1Percent: discountPolicy(1),
	entity.CaseDiscount2Percent: discountPolicy(2),
	entity.CaseDiscount3Percent: discountPolicy(3),
	entity.CaseFXGain: {
		minOffsetDays: 3, maxOffsetDays: 14,
		adjust:   fxAmount(0.95, 0.99, "FX gain"),
		describe: fxDescription,
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldInvoiceNumber,
		},
		mismatched: []entity.MatchField{entity.FieldAmount},
	},
	entity.CaseFXLoss: {
		minOffsetDays: 3, maxOffsetDays: 14,
		adjust:   fxAmount(1.01, 1.05, "FX loss"),
		describe: fxDescription,
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldInvoiceNumber,
		},
		mismatched: []entity.MatchField{entity.FieldAmount},
	},
	entity.CasePartialMatchNoDescription: {
		minOffsetDays: 1, maxOffsetDays: 10,
		adjust: identityAmount,
		describe: func(rng *rand.Rand, _ string) string {
			return genericDescriptions[rng.Intn(len(genericDescriptions))]
		},
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldAmount,
			entity.FieldDateProximity,
		},
		mismatched: []entity.MatchField{entity.FieldDescription},
	},
	entity.CasePartialMatchAmountDiff: {
		minOffsetDays: 1, maxOffsetDays: 10,
		adjust: func(rng *rand.Rand, _ entity.Direction, total decimal.Decimal) adjustment {
			factor := uniformFloat(rng, 0.99, 1.01)
			return adjustment{
				magnitude: total.Mul(decimal.NewFromFloat(factor)).Round(2),
				reason:    "Small unexplained difference",
			}
		},
		describe: paymentDescription,
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldInvoiceNumber,
			entity.FieldDateProximity,
		},
		mismatched: []entity.MatchField{entity.FieldAmount},
	},
	entity.CasePartialMatchDateFar: {
		minOffsetDays: 30, maxOffsetDays: 60,
		adjust: func(_ *rand.Rand, _ entity.Direction, total decimal.Decimal) adjustment {
			return adjustment{magnitude: total, reason: "Payment 30+ days after invoice"}
		},
		describe: func(_ *rand.Rand, number string) string {
			return number + " Late Payment"
		},
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldAmount,
			entity.FieldInvoiceNumber,
		},
		mismatched: []entity.MatchField{entity.FieldDate},
	},
}

func identityAmount(_ *rand.Rand, _ entity.Direction, total decimal.Decimal) adjustment {
	return adjustment{magnitude: total}
}

func paymentDescription(_ *rand.Rand, number string) string {
	return number + " Payment"
}

func fxDescription(_ *rand.Rand, number string) string {
	return number + " FX Payment"
}

func discountPolicy(percent int) casePolicy {
	return casePolicy{
		minOffsetDays: 1, maxOffsetDays: 5,
		adjust: func(_ *rand.Rand, _ entity.Direction, total decimal.Decimal) adjustment {
			factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
			return adjustment{
				magnitude:       total.Mul(factor).Round(2),
				reason:          fmt.Sprintf("%d%% early payment discount", percent),
				discountPercent: percent,
			}
		},
		describe: func(_ *rand.Rand, number string) string {
			return fmt.Sprintf("%s Payment %d%% early discount", number, percent)
		},
		matching: []entity.MatchField{
			entity.FieldCounterparty, entity.FieldInvoiceNumber,
			entity.FieldDateProximity,
		},
		mismatched: []entity.MatchField{entity.FieldAmount},
	}
}

// fxAmount builds the amount rule for the FX cases. For payables the
// multiplier is the drawn rate; for receivables it is mirrored to
// 2-rate so that "gain" and "loss" keep their economic meaning for the
// party receiving the money. A naive sign flip alone would invert it.
func fxAmount(minRate, maxRate float64, reason string) func(*rand.Rand, entity.Direction, decimal.Decimal) adjustment {
	return func(rng *rand.Rand, dir entity.Direction, total decimal.Decimal) adjustment {
		rate := uniformFloat(rng, minRate, maxRate)
		multiplier := rate
		if dir == entity.DirectionReceivables {
			multiplier = 2 - rate
		}
		return adjustment{
			magnitude: total.Mul(decimal.NewFromFloat(multiplier)).Round(2),
			reason:    reason,
			fxRate:    rate,
		}
	}
}

// ApplyPolicy maps (invoice, case type, direction) to the engineered
// bank transaction and the match/mismatch metadata. It is the policy
// engine for the nine simple case types; CaseGroupPayment is rejected
// here and handled by AggregateGroup.
func ApplyPolicy(rng *rand.Rand, inv entity.Invoice, caseType entity.CaseType, dir entity.Direction) (entity.BankTransaction, entity.CaseMetadata, error) {
	policy, ok := simplePolicies[caseType]
	if !ok {
		return entity.BankTransaction{}, entity.CaseMetadata{}, fmt.Errorf("no policy for case type %q", caseType)
	}

	adj := policy.adjust(rng, dir, decimal.NewFromFloat(inv.Total))
	date := inv.IssueDate.AddDate(0, 0, randIntInclusive(rng, policy.minOffsetDays, policy.maxOffsetDays))

	tx := entity.BankTransaction{
		Date:         date,
		Counterparty: RandomNameVariation(rng, counterpartyFor(inv, dir)),
		Description:  policy.describe(rng, inv.Number),
		Amount:       signedAmount(adj.magnitude, dir),
	}

	meta := entity.CaseMetadata{
		OriginalAmount:   inv.Total,
		AdjustedAmount:   adj.magnitude.InexactFloat64(),
		AdjustmentReason: adj.reason,
		DiscountPercent:  adj.discountPercent,
		FXRate:           adj.fxRate,
		MatchingFields:   policy.matching,
		MismatchedFields: policy.mismatched,
	}
	return tx, meta, nil
}

// counterpartyFor returns the company whose name shows on the bank
// statement: the supplier when we pay, the customer when we are paid.
func counterpartyFor(inv entity.Invoice, dir entity.Direction) entity.Company {
	if dir == entity.DirectionPayables {
		return inv.Supplier
	}
	return inv.Customer
}

// signedAmount applies the direction sign convention to an unsigned
// magnitude: negative for payables, positive for receivables.
func signedAmount(magnitude decimal.Decimal, dir entity.Direction) float64 {
	if dir == entity.DirectionPayables {
		return magnitude.Neg().InexactFloat64()
	}
	return magnitude.InexactFloat64()
}
