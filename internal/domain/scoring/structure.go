package scoring

import (
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
)

// ScoreStructure evaluates project layout conventions. The score starts at
// 100 and each missing convention deducts a fixed amount.
func ScoreStructure(snap *domain.Snapshot) domain.StructureAnalysis {
	issues := []string{}
	recommendations := []string{}
	score := 100

	if !snap.HasFile("package.json") {
		issues = append(issues, "Missing package.json file")
		recommendations = append(recommendations, "Add package.json with proper dependencies and scripts")
		score -= 20
	}

	if !snap.HasPathMatching("src/") {
		issues = append(issues, "No clear source code organization")
		recommendations = append(recommendations, "Organize code in src/ directory structure")
		score -= 15
	}

	if !hasReadme(snap) {
		issues = append(issues, "Missing README documentation")
		recommendations = append(recommendations, "Add comprehensive README.md with setup instructions")
		score -= 10
	}

	if !snap.HasPathMatching("tsconfig.json", "babel.config", "webpack.config") {
		issues = append(issues, "Missing build configuration files")
		recommendations = append(recommendations, "Add TypeScript, Babel, or Webpack configuration")
		score -= 10
	}

	if !snap.HasPathMatching("test/", "__tests__/", ".test.", ".spec.") {
		issues = append(issues, "No testing infrastructure found")
		recommendations = append(recommendations, "Add testing framework (Jest, Vitest, etc.)")
		score -= 15
	}

	return domain.StructureAnalysis{
		Score:           clampScore(score),
		Issues:          issues,
		Recommendations: recommendations,
	}
}

func hasReadme(snap *domain.Snapshot) bool {
	for _, f := range snap.Files {
		if strings.Contains(strings.ToLower(f.Path), "readme") {
			return true
		}
	}
	return false
}
