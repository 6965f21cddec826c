package branding

import (
	"fmt"
	"strings"
)

// RenderReport formats a compliance report as Markdown for CI logs and
// order attachments.
func RenderReport(report ComplianceReport) string {
	var b strings.Builder

	status := "❌ NON-COMPLIANT"
	if report.IsCompliant {
		status = "✅ COMPLIANT"
	}

	fmt.Fprintf(&b, "# ECE Branding Compliance Report\n\n")
	fmt.Fprintf(&b, "**Overall Score:** %d/100\n", report.Score)
	fmt.Fprintf(&b, "**Compliance Status:** %s\n", status)
	fmt.Fprintf(&b, "**Total Violations:** %d\n\n", len(report.Violations))

	b.WriteString("## Violation Summary\n")
	bySeverity := map[string]int{}
	var order []string
	for _, v := range report.Violations {
		key := string(v.Severity)
		if _, seen := bySeverity[key]; !seen {
			order = append(order, key)
		}
		bySeverity[key]++
	}
	for _, severity := range order {
		fmt.Fprintf(&b, "- **%s:** %d\n", severity, bySeverity[severity])
	}

	if len(report.Violations) > 0 {
		b.WriteString("\n## Detailed Violations\n")
		for i, v := range report.Violations {
			fmt.Fprintf(&b, "\n### %d. %s\n", i+1, v.Type)
			fmt.Fprintf(&b, "- **Severity:** %s\n", v.Severity)
			fmt.Fprintf(&b, "- **Message:** %s\n", v.Message)
			if v.Line > 0 {
				fmt.Fprintf(&b, "- **Line:** %d\n", v.Line)
			}
		}
	}

	b.WriteString(`
## Compliance Requirements
- ECE Header and Footer components are mandatory
- ThirdWeb authentication provider must be included
- Use branding schema colors and typography
- Include ECE security and auth middleware
- Follow accessibility guidelines (WCAG AA minimum)
- All generated apps must display "Powered by ECE Platform"
`)

	return b.String()
}
