// Package service contains the application services sitting between
// the HTTP shell and the generation engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TabularInc/invoice-test-cases-generator/internal/domain/entity"
	"github.com/TabularInc/invoice-test-cases-generator/internal/export"
	"github.com/TabularInc/invoice-test-cases-generator/internal/generator"
	"github.com/TabularInc/invoice-test-cases-generator/internal/render"
)

// CaseQuantity is one (case type, quantity) pair of a generation
// request. Pairs are processed in the order supplied.
type CaseQuantity struct {
	CaseType string `json:"case_type"`
	Quantity int    `json:"quantity"`
}

// CompanyOverride optionally replaces fields of the caller's own
// generated company. Empty fields keep the generated value.
type CompanyOverride struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	VATID   string `json:"vat_id,omitempty"`
	IBAN    string `json:"iban,omitempty"`
}

// GenerateRequest is the external contract consumed by the core.
type GenerateRequest struct {
	Cases     []CaseQuantity   `json:"cases"`
	Direction string           `json:"direction"`
	StartDate string           `json:"start_date"` // YYYY-MM-DD
	EndDate   string           `json:"end_date"`   // YYYY-MM-DD
	Company   *CompanyOverride `json:"company,omitempty"`
	Seed      *int64           `json:"seed,omitempty"` // omitted: time-derived
}

// SuiteService generates reconciliation test suites.
type SuiteService interface {
	Generate(ctx context.Context, req GenerateRequest) (*entity.Suite, error)
	GenerateBundle(ctx context.Context, req GenerateRequest) (data []byte, filename string, err error)
}

// Defaults configures fallback values for fields a request leaves
// unset.
type Defaults struct {
	OwnCompanyName  string
	OwnCompanyEmail string
}

type suiteService struct {
	logger   *zap.Logger
	defaults Defaults
}

// NewSuiteService creates the default suite service.
func NewSuiteService(logger *zap.Logger, defaults Defaults) SuiteService {
	return &suiteService{logger: logger, defaults: defaults}
}

// Generate validates the request, then runs the whole assembly with a
// request-local random source so concurrent calls never share state.
func (s *suiteService) Generate(_ context.Context, req GenerateRequest) (*entity.Suite, error) {
	requests, dir, start, end, err := s.parseRequest(req)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	assembler := generator.NewAssembler(rng, s.logger)
	own := assembler.OwnCompany()
	if s.defaults.OwnCompanyName != "" {
		own.Name = s.defaults.OwnCompanyName
		own.NameVariations = nil
	}
	if s.defaults.OwnCompanyEmail != "" {
		own.Email = s.defaults.OwnCompanyEmail
	}
	applyOverride(&own, req.Company)

	cases, err := assembler.Assemble(requests, dir, start, end, own)
	if err != nil {
		return nil, err
	}

	suite := &entity.Suite{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Direction: dir,
		Cases:     cases,
		CSV:       export.TransactionsCSV(cases),
	}

	s.logger.Info("generated suite",
		zap.String("suite_id", suite.ID.String()),
		zap.String("direction", string(dir)),
		zap.Int("cases", len(cases)),
		zap.Int64("seed", seed))
	return suite, nil
}

// GenerateBundle generates a suite and packages it with the rendered
// invoice PDFs into a single zip artifact.
func (s *suiteService) GenerateBundle(ctx context.Context, req GenerateRequest) ([]byte, string, error) {
	suite, err := s.Generate(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := export.Bundle(suite, render.Invoice)
	if err != nil {
		return nil, "", fmt.Errorf("failed to package suite %s: %w", suite.ID, err)
	}

	filename := fmt.Sprintf("testcases-%s-%s.zip", suite.Direction, suite.CreatedAt.Format("20060102-150405"))
	return data, filename, nil
}

func (s *suiteService) parseRequest(req GenerateRequest) ([]generator.CaseRequest, entity.Direction, time.Time, time.Time, error) {
	requests := make([]generator.CaseRequest, 0, len(req.Cases))
	for _, c := range req.Cases {
		requests = append(requests, generator.CaseRequest{
			Type:     entity.CaseType(c.CaseType),
			Quantity: c.Quantity,
		})
	}
	dir := entity.Direction(req.Direction)

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, "", time.Time{}, time.Time{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, "", time.Time{}, time.Time{}, err
	}

	if err := generator.ValidateRequest(requests, dir, start, end); err != nil {
		return nil, "", time.Time{}, time.Time{}, err
	}
	return requests, dir, start, end, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", generator.ErrInvalidDateRange)
	}
	t, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", generator.ErrInvalidDateRange, value)
	}
	return t, nil
}

func applyOverride(c *entity.Company, o *CompanyOverride) {
	if o == nil {
		return
	}
	if o.Name != "" {
		c.Name = o.Name
		c.NameVariations = nil
	}
	if o.Address != "" {
		c.Address = o.Address
	}
	if o.Email != "" {
		c.Email = o.Email
	}
	if o.VATID != "" {
		c.VATID = o.VATID
	}
	if o.IBAN != "" {
		c.IBAN = o.IBAN
	}
}

// IsClientFault reports whether err is an input-validation error that
// should surface as a 4xx rather than an internal failure.
func IsClientFault(err error) bool {
	return errors.Is(err, generator.ErrEmptyCaseList) ||
		errors.Is(err, generator.ErrInvalidQuantity) ||
		errors.Is(err, generator.ErrUnknownCaseType) ||
		errors.Is(err, generator.ErrInvalidDirection) ||
		errors.Is(err, generator.ErrInvalidDateRange)
}
