package domain

import "fmt"

// DCFInput holds the assumptions for a 5-year discounted cash flow model.
type DCFInput struct {
	CurrentRevenue  float64    `json:"current_revenue"`
	GrowthRates     [5]float64 `json:"growth_rates"`
	OperatingMargin float64    `json:"operating_margin"`
	TaxRate         float64    `json:"tax_rate"`
	CapexPercent    float64    `json:"capex_percent"`
	NWCPercent      float64    `json:"nwc_percent"`
	DiscountRate    float64    `json:"discount_rate"`
	TerminalGrowth  float64    `json:"terminal_growth"`
}

// DCFProjection is one projected year of the model.
type DCFProjection struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	EBIT    float64 `json:"ebit"`
	FCF     float64 `json:"fcf"`
}

// DCFResult carries the NPV under base, bull and bear perturbations plus
// the base-case yearly projections.
type DCFResult struct {
	Base            float64         `json:"base"`
	Bull            float64         `json:"bull"`
	Bear            float64         `json:"bear"`
	Yearly          []DCFProjection `json:"yearly"`
	AssumptionsUsed DCFInput        `json:"assumptions_used"`
}

// ValidateDCFInput validates a DCFInput instance. The Gordon growth
// terminal value is undefined when the discount rate does not exceed
// terminal growth.
func ValidateDCFInput(in *DCFInput) error {
	if in == nil {
		return fmt.Errorf("dcf input cannot be nil")
	}
	if in.DiscountRate <= in.TerminalGrowth {
		return ErrInvalidDCFRates
	}
	return nil
}
