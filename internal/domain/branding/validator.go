// Package branding audits generated source text against the platform's
// branding schema. It is a standalone auditing utility: the generation
// pipeline does not call it, and wiring it in is an open product decision.
package branding

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
)

// ComplianceReport is the outcome of a branding audit.
type ComplianceReport struct {
	IsCompliant bool        `json:"isCompliant"`
	Violations  []Violation `json:"violations"`
	Score       int         `json:"score"`
}

type Violation struct {
	Type     string          `json:"type"`
	Severity domain.Severity `json:"severity"`
	Message  string          `json:"message"`
	Line     int             `json:"line,omitempty"`
}

var hardcodedColorPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}|rgb\(|rgba\(`)

// ValidateCompliance runs six independent text checks over generated code.
// Compliance requires zero critical violations and a total within the
// schema's allowance. Score = 100 - 10 per violation - 50 per critical,
// floored at zero.
func ValidateCompliance(code string, schema domain.BrandingSchema) ComplianceReport {
	var violations []Violation

	violations = append(violations, checkRequiredComponents(code)...)
	violations = append(violations, checkColorUsage(code)...)
	violations = append(violations, checkTypography(code, schema)...)
	violations = append(violations, checkLayout(code)...)
	violations = append(violations, checkSecurity(code)...)
	violations = append(violations, checkAccessibility(code)...)

	criticals := 0
	for _, v := range violations {
		if v.Severity == domain.SeverityCritical {
			criticals++
		}
	}

	score := 100 - len(violations)*10 - criticals*50
	if score < 0 {
		score = 0
	}

	return ComplianceReport{
		IsCompliant: criticals == 0 && len(violations) <= schema.Compliance.AllowedViolations,
		Violations:  violations,
		Score:       score,
	}
}

func checkRequiredComponents(code string) []Violation {
	var violations []Violation

	if !strings.Contains(code, "ECEHeader") {
		violations = append(violations, Violation{
			Type:     "MISSING_COMPONENT",
			Severity: domain.SeverityCritical,
			Message:  "ECE Header component is required but missing",
		})
	}
	if !strings.Contains(code, "ECEFooter") {
		violations = append(violations, Violation{
			Type:     "MISSING_COMPONENT",
			Severity: domain.SeverityCritical,
			Message:  "ECE Footer component is required but missing",
		})
	}
	if !strings.Contains(code, "ThirdWebProvider") && !strings.Contains(code, "ThirdwebProvider") {
		violations = append(violations, Violation{
			Type:     "MISSING_AUTH",
			Severity: domain.SeverityCritical,
			Message:  "ThirdWeb Provider is required for authentication",
		})
	}
	if !strings.Contains(code, "ECE_BRANDING_CONFIG") {
		violations = append(violations, Violation{
			Type:     "MISSING_BRANDING",
			Severity: domain.SeverityCritical,
			Message:  "ECE branding configuration is required",
		})
	}
	return violations
}

func checkColorUsage(code string) []Violation {
	matches := hardcodedColorPattern.FindAllString(code, -1)
	if len(matches) == 0 {
		return nil
	}
	return []Violation{{
		Type:     "HARDCODED_COLORS",
		Severity: domain.SeverityHigh,
		Message:  fmt.Sprintf("Found %d hardcoded colors. Use branding schema colors instead.", len(matches)),
	}}
}

func checkTypography(code string, schema domain.BrandingSchema) []Violation {
	if strings.Contains(code, "font-family:") && !strings.Contains(code, schema.Typography.FontFamily.Primary) {
		return []Violation{{
			Type:     "INVALID_TYPOGRAPHY",
			Severity: domain.SeverityMedium,
			Message:  "Custom font families detected. Use the branding typography schema.",
		}}
	}
	return nil
}

func checkLayout(code string) []Violation {
	if !strings.Contains(code, "container") && !strings.Contains(code, "max-w-") {
		return []Violation{{
			Type:     "LAYOUT_VIOLATION",
			Severity: domain.SeverityMedium,
			Message:  "Proper container layouts are required for consistency",
		}}
	}
	return nil
}

func checkSecurity(code string) []Violation {
	var violations []Violation
	if strings.Contains(code, "express") && !strings.Contains(code, "ECESecurityMiddleware") {
		violations = append(violations, Violation{
			Type:     "MISSING_SECURITY",
			Severity: domain.SeverityCritical,
			Message:  "ECE Security Middleware is required for all backend code",
		})
	}
	if strings.Contains(code, "/api/") && !strings.Contains(code, "ECEAuthMiddleware") {
		violations = append(violations, Violation{
			Type:     "MISSING_AUTH_MIDDLEWARE",
			Severity: domain.SeverityCritical,
			Message:  "ECE Auth Middleware is required for all API routes",
		})
	}
	return violations
}

func checkAccessibility(code string) []Violation {
	var violations []Violation
	if strings.Contains(code, "<img") && !strings.Contains(code, "alt=") {
		violations = append(violations, Violation{
			Type:     "ACCESSIBILITY_VIOLATION",
			Severity: domain.SeverityHigh,
			Message:  "All images must have alt attributes for accessibility",
		})
	}
	if strings.Contains(code, "button") && !strings.Contains(code, "aria-label") {
		violations = append(violations, Violation{
			Type:     "ACCESSIBILITY_VIOLATION",
			Severity: domain.SeverityMedium,
			Message:  "Interactive elements should have proper ARIA labels",
		})
	}
	return violations
}
