package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

var (
	rangeStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
)

func newTestAssembler(seed int64) *Assembler {
	return NewAssembler(rand.New(rand.NewSource(seed)), zap.NewNop())
}

func TestValidateRequest(t *testing.T) {
	valid := []CaseRequest{{Type: entity.CasePerfectMatch, Quantity: 1}}

	tests := []struct {
		name     string
		requests []CaseRequest
		dir      entity.Direction
		start    time.Time
		end      time.Time
		wantErr  error
	}{
		{
			name: "valid", requests: valid, dir: entity.DirectionPayables,
			start: rangeStart, end: rangeEnd,
		},
		{
			name: "empty case list", requests: nil, dir: entity.DirectionPayables,
			start: rangeStart, end: rangeEnd, wantErr: ErrEmptyCaseList,
		},
		{
			name:     "unknown case type",
			requests: []CaseRequest{{Type: "mystery", Quantity: 1}},
			dir:      entity.DirectionPayables,
			start:    rangeStart, end: rangeEnd, wantErr: ErrUnknownCaseType,
		},
		{
			name:     "zero quantity",
			requests: []CaseRequest{{Type: entity.CasePerfectMatch, Quantity: 0}},
			dir:      entity.DirectionPayables,
			start:    rangeStart, end: rangeEnd, wantErr: ErrInvalidQuantity,
		},
		{
			name: "bad direction", requests: valid, dir: "sideways",
			start: rangeStart, end: rangeEnd, wantErr: ErrInvalidDirection,
		},
		{
			name: "end before start", requests: valid, dir: entity.DirectionPayables,
			start: rangeEnd, end: rangeStart, wantErr: ErrInvalidDateRange,
		},
		{
			name: "zero dates", requests: valid, dir: entity.DirectionPayables,
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.requests, tt.dir, tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAssembler_CaseOrderFollowsRequests(t *testing.T) {
	a := newTestAssembler(31)
	own := a.OwnCompany()

	requests := []CaseRequest{
		{Type: entity.CasePerfectMatch, Quantity: 2},
		{Type: entity.CaseGroupPayment, Quantity: 1},
		{Type: entity.CaseDiscount1Percent, Quantity: 1},
	}

	cases, err := a.Assemble(requests, entity.DirectionPayables, rangeStart, rangeEnd, own)
	require.NoError(t, err)

	require.Len(t, cases, 4)
	assert.Equal(t, entity.CasePerfectMatch, cases[0].CaseType)
	assert.Equal(t, entity.CasePerfectMatch, cases[1].CaseType)
	assert.Equal(t, entity.CaseGroupPayment, cases[2].CaseType)
	assert.Equal(t, entity.CaseDiscount1Percent, cases[3].CaseType)
}

func TestAssembler_SequenceIsContiguous(t *testing.T) {
	a := newTestAssembler(32)
	own := a.OwnCompany()

	requests := []CaseRequest{
		{Type: entity.CasePerfectMatch, Quantity: 3},
		{Type: entity.CaseGroupPayment, Quantity: 2},
		{Type: entity.CaseFXGain, Quantity: 1},
	}

	cases, err := a.Assemble(requests, entity.DirectionReceivables, rangeStart, rangeEnd, own)
	require.NoError(t, err)

	var sequence []int
	for _, tc := range cases {
		for _, inv := range tc.AllInvoices() {
			sequence = append(sequence, inv.SequenceNumber())
		}
	}

	require.NotEmpty(t, sequence)
	assert.GreaterOrEqual(t, sequence[0], 100)
	assert.LessOrEqual(t, sequence[0], 999)
	for i := 1; i < len(sequence); i++ {
		assert.Equal(t, sequence[i-1]+1, sequence[i], "sequence gap at position %d", i)
	}
}

func TestAssembler_DirectionAssignsRoles(t *testing.T) {
	tests := []struct {
		name       string
		dir        entity.Direction
		prefix     string
		wantAmount func(t *testing.T, amount float64)
	}{
		{
			name: "payables", dir: entity.DirectionPayables, prefix: entity.PrefixPayable,
			wantAmount: func(t *testing.T, amount float64) { assert.Negative(t, amount) },
		},
		{
			name: "receivables", dir: entity.DirectionReceivables, prefix: entity.PrefixReceivable,
			wantAmount: func(t *testing.T, amount float64) { assert.Positive(t, amount) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAssembler(33)
			own := a.OwnCompany()

			cases, err := a.Assemble(
				[]CaseRequest{{Type: entity.CasePerfectMatch, Quantity: 5}},
				tt.dir, rangeStart, rangeEnd, own)
			require.NoError(t, err)

			for _, tc := range cases {
				assert.True(t, strings.HasPrefix(tc.Invoice.Number, tt.prefix+"-"),
					"number %q lacks prefix %s", tc.Invoice.Number, tt.prefix)
				tt.wantAmount(t, tc.Transaction.Amount)

				if tt.dir == entity.DirectionPayables {
					assert.Equal(t, own.Name, tc.Invoice.Customer.Name)
					assert.NotEqual(t, own.Name, tc.Invoice.Supplier.Name)
				} else {
					assert.Equal(t, own.Name, tc.Invoice.Supplier.Name)
					assert.NotEqual(t, own.Name, tc.Invoice.Customer.Name)
				}
			}
		})
	}
}

func TestAssembler_GroupCaseShape(t *testing.T) {
	a := newTestAssembler(34)
	own := a.OwnCompany()

	cases, err := a.Assemble(
		[]CaseRequest{{Type: entity.CaseGroupPayment, Quantity: 10}},
		entity.DirectionPayables, rangeStart, rangeEnd, own)
	require.NoError(t, err)

	for _, tc := range cases {
		require.GreaterOrEqual(t, len(tc.Invoices), 2)
		require.LessOrEqual(t, len(tc.Invoices), 3)
		assert.Equal(t, tc.Invoices[0].ID, tc.Invoice.ID, "primary invoice must be the first generated")
		assert.Equal(t, len(tc.Invoices), tc.Metadata.GroupedInvoices)

		// one counterparty across the group
		for _, inv := range tc.Invoices {
			assert.Equal(t, tc.Invoices[0].Supplier.Name, inv.Supplier.Name)
		}
	}
}

func TestAssembler_RejectsInvalidRequest(t *testing.T) {
	a := newTestAssembler(35)

	_, err := a.Assemble(nil, entity.DirectionPayables, rangeStart, rangeEnd, entity.Company{})
	assert.ErrorIs(t, err, ErrEmptyCaseList)
}
