package scoring

import (
	"fmt"
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
)

// Dependencies with known security advisories. Matching is by exact package
// name; versions are not consulted at this level.
var knownVulnerableDeps = []string{"lodash", "moment", "request"}

// securityRecommendations are always emitted regardless of findings.
var securityRecommendations = []string{
	"Implement Content Security Policy (CSP) headers",
	"Add rate limiting and input validation",
	"Use environment variables for sensitive data",
	"Implement proper authentication and authorization",
	"Regular dependency security audits",
}

// ScoreSecurity scans file contents for known-dangerous patterns. Each
// detected pattern records a vulnerability and deducts from the score.
func ScoreSecurity(snap *domain.Snapshot) domain.SecurityAnalysis {
	vulnerabilities := []domain.Vulnerability{}
	score := 100

	content := snap.JoinedContent()

	if strings.Contains(content, "password") || strings.Contains(content, "secret") || strings.Contains(content, "api_key") {
		vulnerabilities = append(vulnerabilities, domain.Vulnerability{
			Severity:    domain.SeverityHigh,
			Type:        "HARDCODED_SECRETS",
			Description: "Potential hardcoded secrets or passwords found",
			File:        "multiple files",
		})
		score -= 25
	}

	// Naive SQL string building: SELECT plus concatenation operator.
	if strings.Contains(content, "SELECT") && strings.Contains(content, "+") {
		vulnerabilities = append(vulnerabilities, domain.Vulnerability{
			Severity:    domain.SeverityCritical,
			Type:        "SQL_INJECTION",
			Description: "Potential SQL injection vulnerability",
			File:        "database queries",
		})
		score -= 40
	}

	if strings.Contains(content, "innerHTML") || strings.Contains(content, "dangerouslySetInnerHTML") {
		vulnerabilities = append(vulnerabilities, domain.Vulnerability{
			Severity:    domain.SeverityMedium,
			Type:        "XSS_RISK",
			Description: "Potential XSS vulnerability with innerHTML usage",
			File:        "frontend components",
		})
		score -= 15
	}

	if snap.Manifest != nil {
		for _, dep := range knownVulnerableDeps {
			if _, ok := snap.Manifest.Dependencies[dep]; ok {
				vulnerabilities = append(vulnerabilities, domain.Vulnerability{
					Severity:    domain.SeverityMedium,
					Type:        "VULNERABLE_DEPENDENCY",
					Description: fmt.Sprintf("Dependency %s has known security vulnerabilities", dep),
					File:        "package.json",
				})
				score -= 10
			}
		}
	}

	return domain.SecurityAnalysis{
		Score:           clampScore(score),
		Vulnerabilities: vulnerabilities,
		Recommendations: append([]string{}, securityRecommendations...),
	}
}
