package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ece-platform/appforge/internal/domain"
)

var rarityColors = map[domain.Rarity]lipgloss.Color{
	domain.RarityCommon:    dim,
	domain.RarityRare:      accent,
	domain.RarityEpic:      violet,
	domain.RarityLegendary: warning,
	domain.RarityEnhanced:  success,
}

// RenderCard renders a generated app's trading card.
func RenderCard(app *domain.GeneratedApp) string {
	var b strings.Builder

	rarityColor := rarityColors[app.Card.Rarity]
	cardBox := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(rarityColor).
		Padding(1, 3).
		Width(52)

	name := titleStyle.Render(app.Card.Name)
	rarity := lipgloss.NewStyle().Bold(true).Foreground(rarityColor).Render(string(app.Card.Rarity))
	b.WriteString(cardBox.Render(name + "  " + rarity + "\n" + dimStyle.Render(app.Card.Description)))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Technical") + "\n")
	renderMetric(&b, "Quality", app.Card.Technical.Quality)
	renderMetric(&b, "Complexity", app.Card.Technical.Complexity)
	renderMetric(&b, "Security", app.Card.Technical.Security)
	renderMetric(&b, "Scalability", app.Card.Technical.Scalability)

	b.WriteString("\n  " + titleStyle.Render("Battle") + "\n")
	renderMetric(&b, "Attack", app.Card.Battle.Attack)
	renderMetric(&b, "Defense", app.Card.Battle.Defense)
	renderMetric(&b, "Speed", app.Card.Battle.Speed)
	renderMetric(&b, "Special", app.Card.Battle.Special)
	renderMetric(&b, "Overall", app.Card.Battle.Overall)

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("Deployment:"), app.DeploymentURL)
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("Preview:   "), app.PreviewURL)
	return b.String()
}

func renderMetric(b *strings.Builder, name string, value float64) {
	score := int(value)
	fmt.Fprintf(b, "    %s %s %s\n",
		dimensionStyle.Render(padRight(name, 14)),
		coloredBar(score, 20),
		lipgloss.NewStyle().Foreground(scoreColor(score)).Render(fmt.Sprintf("%.0f", value)),
	)
}
