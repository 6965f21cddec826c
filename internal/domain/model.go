package domain

import (
	"math"
	"time"
)

// ViabilityResult is the outcome of analyzing a codebase for enhancement.
// It is derived fresh per request and never persisted.
type ViabilityResult struct {
	IsViable        bool             `json:"isViable"`
	Score           int              `json:"score"`
	Reason          string           `json:"reason,omitempty"`
	Analysis        Analysis         `json:"analysis"`
	EnhancementPlan *EnhancementPlan `json:"enhancementPlan,omitempty"`
}

// Analysis groups the four scoring dimensions.
type Analysis struct {
	Structure     StructureAnalysis     `json:"structure"`
	Security      SecurityAnalysis      `json:"security"`
	Compatibility CompatibilityAnalysis `json:"compatibility"`
	Quality       QualityAnalysis       `json:"quality"`
}

type StructureAnalysis struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

type SecurityAnalysis struct {
	Score           int             `json:"score"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Recommendations []string        `json:"recommendations"`
}

type Vulnerability struct {
	Severity    Severity `json:"severity"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	File        string   `json:"file,omitempty"`
	Line        int      `json:"line,omitempty"`
}

type CompatibilityAnalysis struct {
	Score           int              `json:"score"`
	Framework       string           `json:"framework"`
	Version         string           `json:"version"`
	Dependencies    []DependencyInfo `json:"dependencies"`
	Recommendations []string         `json:"recommendations"`
}

type DependencyInfo struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Compatible bool     `json:"compatible"`
	Issues     []string `json:"issues,omitempty"`
}

type QualityAnalysis struct {
	Score           int            `json:"score"`
	Metrics         QualityMetrics `json:"metrics"`
	Issues          []string       `json:"issues"`
	Recommendations []string       `json:"recommendations"`
}

type QualityMetrics struct {
	Complexity      int `json:"complexity"`
	Maintainability int `json:"maintainability"`
	TestCoverage    int `json:"testCoverage"`
	Documentation   int `json:"documentation"`
}

// EnhancementPlan is produced only for viable codebases.
type EnhancementPlan struct {
	EstimatedEffort float64 `json:"estimatedEffort"` // hours
	Phases          []Phase `json:"phases"`
	Risks           []Risk  `json:"risks"`
}

type Phase struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Effort      float64  `json:"effort"`
	Tasks       []string `json:"tasks"`
}

type Risk struct {
	Type        string   `json:"type"`
	Probability Severity `json:"probability"`
	Impact      Severity `json:"impact"`
	Mitigation  string   `json:"mitigation"`
}

// Severity doubles as risk probability/impact and vulnerability severity.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Dimension weights for the overall viability score.
const (
	WeightStructure     = 0.20
	WeightSecurity      = 0.40
	WeightCompatibility = 0.25
	WeightQuality       = 0.15
)

// Viability gates. Security is a hard gate independent of the weighted total.
const (
	MinViableScore    = 60
	MinSecurityScore  = 70
	lowScoreThreshold = 40
)

// OverallScore combines the four dimension scores with fixed weights,
// rounded to the nearest integer.
func OverallScore(structure, security, compatibility, quality int) int {
	return int(math.Round(
		float64(structure)*WeightStructure +
			float64(security)*WeightSecurity +
			float64(compatibility)*WeightCompatibility +
			float64(quality)*WeightQuality))
}

// Viable reports whether a codebase passes both the overall threshold and
// the security hard gate.
func Viable(overall, security int) bool {
	return overall >= MinViableScore && security >= MinSecurityScore
}

// ViabilityReason explains a viability decision in user-facing terms.
func ViabilityReason(overall, security int) string {
	switch {
	case security < MinSecurityScore:
		return "Critical security vulnerabilities detected. Enhanced security measures required before enhancement."
	case overall < lowScoreThreshold:
		return "Codebase requires major refactoring before enhancement is viable."
	case overall < MinViableScore:
		return "Moderate issues detected. Consider addressing compatibility and quality concerns."
	default:
		return "Codebase meets minimum requirements for enhancement."
	}
}

// AnalysisEntry is one recorded viability run, kept for trend reporting.
type AnalysisEntry struct {
	URL        string    `json:"url"`
	Score      int       `json:"score"`
	IsViable   bool      `json:"isViable"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// FailedResult is the pessimistic result returned when analysis itself fails.
// Callers only inspect score and viability, so errors are folded into a
// zero-score shape instead of being propagated.
func FailedResult(reason string) *ViabilityResult {
	return &ViabilityResult{
		IsViable: false,
		Score:    0,
		Reason:   reason,
		Analysis: Analysis{
			Structure:     StructureAnalysis{Issues: []string{"Analysis failed"}, Recommendations: []string{}},
			Security:      SecurityAnalysis{Vulnerabilities: []Vulnerability{}, Recommendations: []string{}},
			Compatibility: CompatibilityAnalysis{Framework: "unknown", Version: "unknown", Dependencies: []DependencyInfo{}, Recommendations: []string{}},
			Quality:       QualityAnalysis{Issues: []string{"Analysis failed"}, Recommendations: []string{}},
		},
	}
}
