package domain

// Severity grades key metrics and red flags.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// MetricValue is one extracted financial figure with its provenance.
// Pointer fields stay null in the JSON output when the model could not
// find the figure in the document.
type MetricValue struct {
	Value *float64 `json:"value"`
	Unit  string   `json:"unit,omitempty"`
	Year  *int     `json:"year,omitempty"`
	Page  *int     `json:"page"`
}

// FinancialMetrics groups the standard figures the analysis extracts.
type FinancialMetrics struct {
	Revenue         *MetricValue `json:"revenue,omitempty"`
	RevenueGrowth   *MetricValue `json:"revenue_growth,omitempty"`
	GrossMargin     *MetricValue `json:"gross_margin,omitempty"`
	OperatingMargin *MetricValue `json:"operating_margin,omitempty"`
	NetMargin       *MetricValue `json:"net_margin,omitempty"`
	ARR             *MetricValue `json:"arr,omitempty"`
	CustomerCount   *MetricValue `json:"customer_count,omitempty"`
}

// KeyMetric is a qualitative metric the model judged worth surfacing.
type KeyMetric struct {
	Metric     string   `json:"metric"`
	Value      string   `json:"value"`
	Importance Severity `json:"importance"`
	Page       *int     `json:"page"`
}

// RedFlag is a risk the analysis raised, either extracted by the model or
// appended from compliance screening.
type RedFlag struct {
	Flag     string   `json:"flag"`
	Severity Severity `json:"severity"`
	Category string   `json:"category"`
	Page     *int     `json:"page"`
}

// Citation ties a claim back to a page of the source document.
type Citation struct {
	Page  int    `json:"page"`
	Quote string `json:"quote"`
}

// AnalysisResult is the structured output of one analysis run for exactly
// one document. Immutable once cached, except for the compliance red-flag
// append performed before caching.
type AnalysisResult struct {
	CompanyName         string             `json:"company_name"`
	Sector              string             `json:"sector"`
	FinancialMetrics    FinancialMetrics   `json:"financial_metrics"`
	KeyMetrics          []KeyMetric        `json:"key_metrics"`
	RedFlags            []RedFlag          `json:"red_flags"`
	BusinessOverview    string             `json:"business_overview"`
	CompetitivePosition string             `json:"competitive_position"`
	Citations           []Citation         `json:"citations"`
	ShariaFindings      *ComplianceFinding `json:"sharia_findings,omitempty"`
}
