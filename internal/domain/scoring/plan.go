package scoring

import (
	"math"

	"github.com/ece-platform/appforge/internal/domain"
)

// BuildEnhancementPlan derives a phased effort and risk estimate from a
// completed analysis. Callers invoke it only for viable codebases.
func BuildEnhancementPlan(analysis domain.Analysis) *domain.EnhancementPlan {
	phases := []domain.Phase{
		{
			Name:        "Security Hardening",
			Description: "Address security vulnerabilities and implement platform security standards",
			Effort:      float64(len(analysis.Security.Vulnerabilities)) * 2,
			Tasks: []string{
				"Fix security vulnerabilities",
				"Implement platform security middleware",
				"Add authentication integration",
				"Security audit and testing",
			},
		},
		{
			Name:        "Platform Integration",
			Description: "Integrate branding, wallet authentication, and core services",
			Effort:      16,
			Tasks: []string{
				"Add ThirdWeb wallet integration",
				"Implement branding schema",
				"Integrate platform UI components",
				"Add platform API endpoints",
			},
		},
		{
			Name:        "Quality Improvements",
			Description: "Improve code quality, testing, and documentation",
			Effort:      math.Max(8, float64(100-analysis.Quality.Score)*0.2),
			Tasks: []string{
				"Refactor complex code sections",
				"Add comprehensive testing",
				"Improve documentation",
				"Code quality validation",
			},
		},
		{
			Name:        "Deployment & Optimization",
			Description: "Prepare for deployment with platform standards compliance",
			Effort:      8,
			Tasks: []string{
				"Compliance validation",
				"Performance optimization",
				"Deployment configuration",
				"Final testing and validation",
			},
		},
	}

	total := 0.0
	for _, p := range phases {
		total += p.Effort
	}

	risks := []domain.Risk{
		{
			Type:        "Security Migration",
			Probability: stepProbability(len(analysis.Security.Vulnerabilities) > 0, domain.SeverityHigh),
			Impact:      domain.SeverityHigh,
			Mitigation:  "Thorough security testing and gradual migration approach",
		},
		{
			Type:        "Framework Compatibility",
			Probability: stepProbability(analysis.Compatibility.Score < 80, domain.SeverityMedium),
			Impact:      domain.SeverityMedium,
			Mitigation:  "Compatibility testing and framework-specific adapters",
		},
		{
			Type:        "Code Quality Issues",
			Probability: stepProbability(analysis.Quality.Score < 70, domain.SeverityHigh),
			Impact:      domain.SeverityMedium,
			Mitigation:  "Phased refactoring with comprehensive testing",
		},
	}

	return &domain.EnhancementPlan{
		EstimatedEffort: total,
		Phases:          phases,
		Risks:           risks,
	}
}

func stepProbability(elevated bool, high domain.Severity) domain.Severity {
	if elevated {
		return high
	}
	return domain.SeverityLow
}
