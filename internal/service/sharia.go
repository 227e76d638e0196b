package service

import (
	"regexp"
	"strings"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// Keyword patterns use word boundaries so substrings do not fire
// ("loaner" must not match "loan").
var (
	interestKeywords   = regexp.MustCompile(`(?i)\b(interest|riba|conventional bank|loan interest|usury|usurious)\b`)
	alcoholKeywords    = regexp.MustCompile(`(?i)\b(alcohol|beer|wine|spirits|liquor)\b`)
	gamblingKeywords   = regexp.MustCompile(`(?i)\b(gambling|casino|betting|wager|lottery|bookmaker)\b`)
	prohibitedKeywords = regexp.MustCompile(`(?i)\b(pork|swine|tobacco)\b`)
)

// lendingTerms mark a business overview as describing interest-based
// finance as the core business.
var lendingTerms = []string{"bank", "lending", "loan", "interest-bearing", "conventional finance"}

// shariaRule is one screening rule. Rules run in declaration order; a rule
// returning fail short-circuits the remainder.
type shariaRule struct {
	name     string
	evaluate func(fullText string, analysis *domain.AnalysisResult) (reasons []string, fail bool)
}

// shariaRules is the ordered rule set. The interest rule is the only one
// that can escalate to Fail, and only when the overview confirms lending
// as the core business; otherwise it degrades to a review reason and the
// remaining rules still run.
var shariaRules = []shariaRule{
	{
		name: "interest",
		evaluate: func(fullText string, analysis *domain.AnalysisResult) ([]string, bool) {
			if !interestKeywords.MatchString(fullText) {
				return nil, false
			}
			overview := ""
			if analysis != nil {
				overview = strings.ToLower(analysis.BusinessOverview)
			}
			for _, term := range lendingTerms {
				if strings.Contains(overview, term) {
					return []string{"Company's core business appears to be in conventional lending or interest-based finance."}, true
				}
			}
			return []string{"Detected keywords related to interest/riba. Further review of revenue sources is required."}, false
		},
	},
	{
		name: "alcohol",
		evaluate: func(fullText string, _ *domain.AnalysisResult) ([]string, bool) {
			if alcoholKeywords.MatchString(fullText) {
				return []string{"Detected keywords related to alcohol production or sale."}, false
			}
			return nil, false
		},
	},
	{
		name: "gambling",
		evaluate: func(fullText string, _ *domain.AnalysisResult) ([]string, bool) {
			if gamblingKeywords.MatchString(fullText) {
				return []string{"Detected keywords related to gambling or betting activities."}, false
			}
			return nil, false
		},
	},
	{
		name: "prohibited-products",
		evaluate: func(fullText string, _ *domain.AnalysisResult) ([]string, bool) {
			if prohibitedKeywords.MatchString(fullText) {
				return []string{"Detected keywords related to pork or tobacco products."}, false
			}
			return nil, false
		},
	},
}

// ShariaScreen classifies document text against prohibited-activity
// categories. It is a pure function and never fails: missing or malformed
// analysis input is treated as empty.
type ShariaScreen struct{}

// NewShariaScreen creates a new ShariaScreen instance.
func NewShariaScreen() *ShariaScreen {
	return &ShariaScreen{}
}

// Screen evaluates the rule set, case-insensitively, over the
// concatenation of all input texts.
func (s *ShariaScreen) Screen(texts []string, analysis *domain.AnalysisResult) domain.ComplianceFinding {
	fullText := strings.ToLower(strings.Join(texts, " "))

	var reasons []string
	for _, rule := range shariaRules {
		ruleReasons, fail := rule.evaluate(fullText, analysis)
		reasons = append(reasons, ruleReasons...)
		if fail {
			return domain.ComplianceFinding{
				Status:  domain.ComplianceStatusFail,
				Reasons: reasons,
			}
		}
	}

	if len(reasons) > 0 {
		return domain.ComplianceFinding{
			Status:  domain.ComplianceStatusReview,
			Reasons: reasons,
		}
	}

	return domain.ComplianceFinding{
		Status:  domain.ComplianceStatusPass,
		Reasons: []string{domain.CompliancePassReason},
	}
}
