package domain

// ComplianceStatus is the categorical outcome of the Sharia screen.
type ComplianceStatus string

const (
	ComplianceStatusPass   ComplianceStatus = "Pass"
	ComplianceStatusReview ComplianceStatus = "Review"
	ComplianceStatusFail   ComplianceStatus = "Fail"
)

// CompliancePassReason is the single canned reason reported with a Pass.
// Status is Pass iff Reasons is exactly this sentence.
const CompliancePassReason = "No explicit non-compliant activities found in the text."

// ComplianceFinding is the outcome of screening retrieved document text
// against prohibited-activity categories.
type ComplianceFinding struct {
	Status  ComplianceStatus `json:"status"`
	Reasons []string         `json:"reasons"`
}

// IsPass reports whether the finding raised no issues.
func (f ComplianceFinding) IsPass() bool {
	return f.Status == ComplianceStatusPass
}

// RedFlagSeverity maps a finding status to the severity of the red flags
// appended to an analysis. Pass never reaches this path, so the Low default
// is currently unreachable; it is kept as the conservative fallback for any
// status outside the table.
func (f ComplianceFinding) RedFlagSeverity() Severity {
	switch f.Status {
	case ComplianceStatusFail:
		return SeverityHigh
	case ComplianceStatusReview:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
