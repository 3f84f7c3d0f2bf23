package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
)

// Client-fault validation errors, rejected before any generation begins.
var (
	ErrEmptyCaseList    = errors.New("case list must not be empty")
	ErrInvalidQuantity  = errors.New("case quantity must be positive")
	ErrUnknownCaseType  = errors.New("unknown case type")
	ErrInvalidDirection = errors.New("direction must be payables or receivables")
	ErrInvalidDateRange = errors.New("date range end must not precede start")
)

// CaseRequest asks for Quantity cases of one type. Requests form an
// ordered sequence: iteration order over them is part of the contract.
type CaseRequest struct {
	Type     entity.CaseType
	Quantity int
}

// ValidateRequest checks a generation request before any synthesis
// work. All returned errors are client faults.
func ValidateRequest(requests []CaseRequest, dir entity.Direction, start, end time.Time) error {
	if len(requests) == 0 {
		return ErrEmptyCaseList
	}
	for _, req := range requests {
		if !req.Type.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCaseType, req.Type)
		}
		if req.Quantity <= 0 {
			return fmt.Errorf("%w: %s has quantity %d", ErrInvalidQuantity, req.Type, req.Quantity)
		}
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// Assembler orchestrates one generation run: it sequences invoice
// numbers, fans out to the synthesizer and the policy engine or the
// group aggregator, and appends cases in request order.
type Assembler struct {
	rng    *rand.Rand
	party  *PartyGenerator
	synth  *InvoiceSynthesizer
	logger *zap.Logger
}

// NewAssembler builds an assembler around one random source. The
// source must not be shared with a concurrently running assembler.
func NewAssembler(rng *rand.Rand, logger *zap.Logger) *Assembler {
	return &Assembler{
		rng:    rng,
		party:  NewPartyGenerator(rng),
		synth:  NewInvoiceSynthesizer(rng),
		logger: logger,
	}
}

// OwnCompany generates the caller's own company record, used as the
// customer for payables and the supplier for receivables.
func (a *Assembler) OwnCompany() entity.Company {
	return a.party.Company()
}

// Assemble runs the full generation: all units of each requested type
// in order, inner loop first. One monotonically increasing invoice
// sequence spans the whole run, seeded in [100,999] so fixtures do not
// look visibly sequential.
func (a *Assembler) Assemble(requests []CaseRequest, dir entity.Direction, start, end time.Time, own entity.Company) ([]entity.TestCase, error) {
	if err := ValidateRequest(requests, dir, start, end); err != nil {
		return nil, err
	}

	prefix := entity.PrefixReceivable
	if dir == entity.DirectionPayables {
		prefix = entity.PrefixPayable
	}
	seq := randIntInclusive(a.rng, 100, 999)

	var cases []entity.TestCase
	for _, req := range requests {
		for i := 0; i < req.Quantity; i++ {
			var tc entity.TestCase
			var err error
			if req.Type == entity.CaseGroupPayment {
				tc, seq = a.groupCase(dir, prefix, seq, start, end, own)
			} else {
				tc, err = a.simpleCase(req.Type, dir, prefix, seq, start, end, own)
				if err != nil {
					return nil, err
				}
				seq++
			}
			cases = append(cases, tc)
		}
	}

	a.logger.Debug("assembled test cases",
		zap.Int("cases", len(cases)),
		zap.String("direction", string(dir)))
	return cases, nil
}

func (a *Assembler) simpleCase(caseType entity.CaseType, dir entity.Direction, prefix string, seq int, start, end time.Time, own entity.Company) (entity.TestCase, error) {
	supplier, customer := a.parties(dir, own)
	inv := a.synth.Generate(prefix, seq, start, end, supplier, customer)

	tx, meta, err := ApplyPolicy(a.rng, inv, caseType, dir)
	if err != nil {
		return entity.TestCase{}, err
	}

	return entity.TestCase{
		ID:          uuid.New(),
		CaseType:    caseType,
		Direction:   dir,
		Invoice:     inv,
		Transaction: tx,
		Metadata:    meta,
	}, nil
}

// groupCase builds N invoices against one counterparty plus the
// aggregate transaction, and returns the advanced sequence counter.
func (a *Assembler) groupCase(dir entity.Direction, prefix string, seq int, start, end time.Time, own entity.Company) (entity.TestCase, int) {
	supplier, customer := a.parties(dir, own)
	count := GroupInvoiceCount(a.rng)

	invoices := make([]entity.Invoice, 0, count)
	for i := 0; i < count; i++ {
		invoices = append(invoices, a.synth.Generate(prefix, seq, start, end, supplier, customer))
		seq++
	}

	tx, meta := AggregateGroup(a.rng, invoices, dir)

	return entity.TestCase{
		ID:          uuid.New(),
		CaseType:    entity.CaseGroupPayment,
		Direction:   dir,
		Invoice:     invoices[0], // primary, for single-invoice display contexts
		Invoices:    invoices,
		Transaction: tx,
		Metadata:    meta,
	}, seq
}

// parties assigns the own company and a freshly generated counterparty
// to the supplier/customer roles according to direction.
func (a *Assembler) parties(dir entity.Direction, own entity.Company) (supplier, customer entity.Company) {
	counterparty := a.party.Company()
	if dir == entity.DirectionPayables {
		return counterparty, own
	}
	return own, counterparty
}
