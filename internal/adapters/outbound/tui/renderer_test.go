package tui_test

import (
	"testing"

	"github.com/ece-platform/appforge/internal/adapters/outbound/tui"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/branding"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *domain.ViabilityResult {
	return &domain.ViabilityResult{
		IsViable: true,
		Score:    87,
		Reason:   "Codebase meets minimum requirements for enhancement.",
		Analysis: domain.Analysis{
			Structure: domain.StructureAnalysis{Score: 85, Issues: []string{"Missing README documentation"}},
			Security: domain.SecurityAnalysis{Score: 90, Vulnerabilities: []domain.Vulnerability{
				{Severity: domain.SeverityMedium, Type: "XSS_RISK", Description: "Potential XSS vulnerability"},
			}},
			Compatibility: domain.CompatibilityAnalysis{Score: 95, Framework: "React", Version: "^18.2.0"},
			Quality:       domain.QualityAnalysis{Score: 70},
		},
		EnhancementPlan: &domain.EnhancementPlan{
			EstimatedEffort: 34,
			Phases: []domain.Phase{
				{Name: "Security Hardening", Description: "Fix findings", Effort: 2},
			},
			Risks: []domain.Risk{
				{Type: "Security Migration", Probability: domain.SeverityHigh, Impact: domain.SeverityHigh},
			},
		},
	}
}

func TestRenderViability_ContainsVerdictAndScore(t *testing.T) {
	out := tui.RenderViability("https://github.com/acme/shop", sampleResult())

	assert.Contains(t, out, "87")
	assert.Contains(t, out, "VIABLE")
	assert.Contains(t, out, "https://github.com/acme/shop")
}

func TestRenderViability_ContainsDimensions(t *testing.T) {
	out := tui.RenderViability("url", sampleResult())

	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "Security")
	assert.Contains(t, out, "Compatibility")
	assert.Contains(t, out, "Quality")
	assert.Contains(t, out, "Missing README documentation")
	assert.Contains(t, out, "Potential XSS vulnerability")
	assert.Contains(t, out, "React")
}

func TestRenderViability_ContainsPlan(t *testing.T) {
	out := tui.RenderViability("url", sampleResult())

	assert.Contains(t, out, "Enhancement Plan")
	assert.Contains(t, out, "Security Hardening")
	assert.Contains(t, out, "Security Migration")
}

func TestRenderViability_NotViableWithoutPlan(t *testing.T) {
	result := domain.FailedResult("analysis failed: boom")
	out := tui.RenderViability("url", result)

	assert.Contains(t, out, "NOT VIABLE")
	assert.NotContains(t, out, "Enhancement Plan")
}

func TestRenderCard_ContainsMetricsAndRarity(t *testing.T) {
	app := &domain.GeneratedApp{
		ID:            "gen-1",
		DeploymentURL: "https://gen-1.ece-apps.com",
		PreviewURL:    "https://preview-gen-1.ece-apps.com",
		Card: domain.CardData{
			Name:        "Metrics Hub",
			Description: "Team analytics",
			Technical:   domain.TechnicalMetrics{Quality: 90, Complexity: 16, Security: 95, Scalability: 85},
			Battle:      domain.BattleStats{Attack: 85, Defense: 90, Speed: 80, Special: 88, Overall: 86},
			Rarity:      domain.RarityEpic,
		},
	}

	out := tui.RenderCard(app)
	assert.Contains(t, out, "Metrics Hub")
	assert.Contains(t, out, "EPIC")
	assert.Contains(t, out, "Quality")
	assert.Contains(t, out, "https://gen-1.ece-apps.com")
}

func TestRenderCompliance_Violations(t *testing.T) {
	report := branding.ComplianceReport{
		IsCompliant: false,
		Score:       40,
		Violations: []branding.Violation{
			{Type: "MISSING_COMPONENT", Severity: domain.SeverityCritical, Message: "ECE Header component is required but missing"},
		},
	}

	out := tui.RenderCompliance(report)
	assert.Contains(t, out, "NON-COMPLIANT")
	assert.Contains(t, out, "MISSING_COMPONENT")
	assert.Contains(t, out, "40")
}

func TestRenderCompliance_Clean(t *testing.T) {
	out := tui.RenderCompliance(branding.ComplianceReport{IsCompliant: true, Score: 100})
	assert.Contains(t, out, "COMPLIANT")
	assert.Contains(t, out, "No violations found.")
}
