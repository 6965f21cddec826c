// Package tui renders analysis results and cards for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ece-platform/appforge/internal/domain"
)

// ── ECE dark palette ──
var (
	accent  = lipgloss.Color("#3B82F6") // blue
	fg      = lipgloss.Color("#F8FAFC") // near white
	dim     = lipgloss.Color("#64748B") // slate
	faint   = lipgloss.Color("#334155") // very dim
	success = lipgloss.Color("#10B981") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
	violet  = lipgloss.Color("#8B5CF6") // purple
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	passStyle      = lipgloss.NewStyle().Foreground(success)
	failStyle      = lipgloss.NewStyle().Foreground(danger)
	warnStyle      = lipgloss.NewStyle().Foreground(warning)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimensionStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine  = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderViability renders a full viability report.
func RenderViability(url string, result *domain.ViabilityResult) string {
	var b strings.Builder

	verdict := failStyle.Bold(true).Render("NOT VIABLE")
	if result.IsViable {
		verdict = passStyle.Bold(true).Render("VIABLE")
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Score)).
		Render(fmt.Sprintf("%d / 100", result.Score))

	title := headerStyle.Render("appforge")
	subtitle := dimStyle.Render("Codebase Viability")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdict))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render(url) + "\n")
	b.WriteString("  " + dimStyle.Render(result.Reason) + "\n\n")

	renderDimension(&b, "Structure", result.Analysis.Structure.Score, int(domain.WeightStructure*100), result.Analysis.Structure.Issues)
	renderDimension(&b, "Security", result.Analysis.Security.Score, int(domain.WeightSecurity*100), securityIssues(result.Analysis.Security))
	renderDimension(&b, "Compatibility", result.Analysis.Compatibility.Score, int(domain.WeightCompatibility*100), compatibilityIssues(result.Analysis.Compatibility))
	renderDimension(&b, "Quality", result.Analysis.Quality.Score, int(domain.WeightQuality*100), result.Analysis.Quality.Issues)

	if result.EnhancementPlan != nil {
		b.WriteString("\n  " + separatorLine + "\n\n")
		renderPlan(&b, result.EnhancementPlan)
	}

	b.WriteString("\n")
	return b.String()
}

func renderDimension(b *strings.Builder, name string, score, weight int, issues []string) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%d", score))
	bar := coloredBar(score, 20)
	weightText := dimStyle.Render(fmt.Sprintf("%d%%", weight))

	fmt.Fprintf(b, "  %s %s  %s %s\n", dimensionStyle.Render(padRight(name, 16)), bar, scoreText, weightText)
	for _, issue := range issues {
		fmt.Fprintf(b, "    %s %s\n", warnStyle.Render("●"), dimStyle.Render(issue))
	}
}

func securityIssues(sec domain.SecurityAnalysis) []string {
	var issues []string
	for _, v := range sec.Vulnerabilities {
		issues = append(issues, fmt.Sprintf("[%s] %s", v.Severity, v.Description))
	}
	return issues
}

func compatibilityIssues(compat domain.CompatibilityAnalysis) []string {
	issues := []string{fmt.Sprintf("Framework: %s %s", compat.Framework, compat.Version)}
	for _, dep := range compat.Dependencies {
		if !dep.Compatible {
			issues = append(issues, fmt.Sprintf("%s@%s is incompatible", dep.Name, dep.Version))
		}
	}
	return issues
}

func renderPlan(b *strings.Builder, plan *domain.EnhancementPlan) {
	b.WriteString("  " + titleStyle.Render("Enhancement Plan") + "  " +
		dimStyle.Render(fmt.Sprintf("%.0f hours estimated", plan.EstimatedEffort)) + "\n\n")

	for _, phase := range plan.Phases {
		fmt.Fprintf(b, "    %s %s  %s\n",
			passStyle.Render("●"),
			titleStyle.Render(phase.Name),
			dimStyle.Render(fmt.Sprintf("%.0fh", phase.Effort)),
		)
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(phase.Description))
	}

	b.WriteString("\n    " + titleStyle.Render("Risks") + "\n")
	for _, risk := range plan.Risks {
		fmt.Fprintf(b, "    %s %s  %s\n",
			severityDot(risk.Probability),
			risk.Type,
			dimStyle.Render(fmt.Sprintf("probability %s, impact %s", risk.Probability, risk.Impact)),
		)
	}
}

func severityDot(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical, domain.SeverityHigh:
		return failStyle.Render("●")
	case domain.SeverityMedium:
		return warnStyle.Render("●")
	default:
		return passStyle.Render("●")
	}
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
