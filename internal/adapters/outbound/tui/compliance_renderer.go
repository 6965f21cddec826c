package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/branding"
)

// RenderCompliance renders a branding audit for the terminal.
func RenderCompliance(report branding.ComplianceReport) string {
	var b strings.Builder

	verdict := failStyle.Bold(true).Render("NON-COMPLIANT")
	if report.IsCompliant {
		verdict = passStyle.Bold(true).Render("COMPLIANT")
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.Score)).
		Render(fmt.Sprintf("%d / 100", report.Score))

	title := headerStyle.Render("appforge")
	subtitle := dimStyle.Render("Branding Compliance")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdict))
	b.WriteString("\n\n")

	if len(report.Violations) == 0 {
		b.WriteString("  " + passStyle.Render("No violations found.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s\n\n",
		titleStyle.Render("Violations"),
		dimStyle.Render(fmt.Sprintf("(%d)", len(report.Violations))),
	)
	for _, v := range report.Violations {
		fmt.Fprintf(&b, "    %s %s  %s\n",
			severityDot(v.Severity),
			severityTag(v.Severity),
			v.Type,
		)
		fmt.Fprintf(&b, "         %s\n", dimStyle.Render(v.Message))
	}
	return b.String()
}

func severityTag(s domain.Severity) string {
	style := dimStyle
	switch s {
	case domain.SeverityCritical, domain.SeverityHigh:
		style = failStyle.Bold(true)
	case domain.SeverityMedium:
		style = warnStyle.Bold(true)
	}
	return style.Render(padRight(string(s), 8))
}
