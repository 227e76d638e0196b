package service

import (
	"math"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

const (
	dcfYears           = 5
	scenarioGrowthBump = 0.03
	scenarioMarginBump = 0.02
	scenarioClamp      = 0.95
)

// DCFService runs a closed-form five-year discounted cash flow valuation
// under base, bull and bear perturbations. Stateless.
type DCFService struct{}

// NewDCFService creates a new DCFService instance.
func NewDCFService() *DCFService {
	return &DCFService{}
}

// Run validates the assumptions and produces the three-scenario result.
// Bull and bear shift the growth rates and operating margin symmetrically,
// clamped to sane bounds.
func (s *DCFService) Run(input domain.DCFInput) (*domain.DCFResult, error) {
	if err := domain.ValidateDCFInput(&input); err != nil {
		return nil, err
	}

	baseNPV, yearly := runScenario(input)

	bull := input
	for i, g := range bull.GrowthRates {
		bull.GrowthRates[i] = math.Min(g+scenarioGrowthBump, scenarioClamp)
	}
	bull.OperatingMargin = math.Min(input.OperatingMargin+scenarioMarginBump, scenarioClamp)
	bullNPV, _ := runScenario(bull)

	bear := input
	for i, g := range bear.GrowthRates {
		bear.GrowthRates[i] = math.Max(g-scenarioGrowthBump, -scenarioClamp)
	}
	bear.OperatingMargin = math.Max(input.OperatingMargin-scenarioMarginBump, -scenarioClamp)
	bearNPV, _ := runScenario(bear)

	return &domain.DCFResult{
		Base:            baseNPV,
		Bull:            bullNPV,
		Bear:            bearNPV,
		Yearly:          yearly,
		AssumptionsUsed: input,
	}, nil
}

func runScenario(params domain.DCFInput) (float64, []domain.DCFProjection) {
	revenues := make([]float64, 0, dcfYears+1)
	revenues = append(revenues, params.CurrentRevenue)
	for i := 0; i < dcfYears; i++ {
		revenues = append(revenues, revenues[len(revenues)-1]*(1+params.GrowthRates[i]))
	}

	projections := make([]domain.DCFProjection, 0, dcfYears)
	freeCashFlows := make([]float64, 0, dcfYears)
	for year := 1; year <= dcfYears; year++ {
		revenue := revenues[year]
		deltaRevenue := revenue - revenues[year-1]

		ebit := revenue * params.OperatingMargin
		nopat := ebit * (1 - params.TaxRate)
		capex := revenue * params.CapexPercent
		deltaNWC := deltaRevenue * params.NWCPercent

		fcf := nopat - capex - deltaNWC
		freeCashFlows = append(freeCashFlows, fcf)
		projections = append(projections, domain.DCFProjection{
			Year:    year,
			Revenue: revenue,
			EBIT:    ebit,
			FCF:     fcf,
		})
	}

	fcfYear5 := freeCashFlows[len(freeCashFlows)-1]
	terminalValue := (fcfYear5 * (1 + params.TerminalGrowth)) / (params.DiscountRate - params.TerminalGrowth)

	npv := 0.0
	for i, fcf := range freeCashFlows {
		npv += fcf / math.Pow(1+params.DiscountRate, float64(i+1))
	}
	npv += terminalValue / math.Pow(1+params.DiscountRate, float64(dcfYears))

	return npv, projections
}
