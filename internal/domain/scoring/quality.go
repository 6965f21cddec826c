package scoring

import (
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
)

// ScoreQuality derives four independent heuristic metrics and averages them
// into the quality score.
func ScoreQuality(snap *domain.Snapshot) domain.QualityAnalysis {
	issues := []string{}
	recommendations := []string{}

	metrics := domain.QualityMetrics{
		Complexity:      complexityMetric(snap),
		Maintainability: maintainabilityMetric(snap),
		TestCoverage:    testCoverageMetric(snap),
		Documentation:   documentationMetric(snap),
	}

	score := (metrics.Complexity + metrics.Maintainability + metrics.TestCoverage + metrics.Documentation) / 4

	if metrics.Complexity < 60 {
		issues = append(issues, "High code complexity detected")
		recommendations = append(recommendations, "Refactor complex functions and reduce cyclomatic complexity")
	}
	if metrics.Maintainability < 70 {
		issues = append(issues, "Low maintainability score")
		recommendations = append(recommendations, "Improve code organization and reduce coupling")
	}
	if metrics.TestCoverage < 50 {
		issues = append(issues, "Insufficient test coverage")
		recommendations = append(recommendations, "Add comprehensive unit and integration tests")
	}
	if metrics.Documentation < 40 {
		issues = append(issues, "Poor documentation")
		recommendations = append(recommendations, "Add inline comments and API documentation")
	}

	return domain.QualityAnalysis{
		Score:           clampScore(score),
		Metrics:         metrics,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

// complexityMetric penalizes sprawling codebases: many files and large
// average file size both deduct.
func complexityMetric(snap *domain.Snapshot) int {
	score := 100
	fileCount := len(snap.Files)
	if fileCount == 0 {
		return 0
	}

	totalSize := 0
	for _, f := range snap.Files {
		totalSize += f.Size
	}
	avgSize := totalSize / fileCount

	if fileCount > 100 {
		score -= 20
	}
	if avgSize > 5000 {
		score -= 15
	}
	return clampScore(score)
}

// maintainabilityMetric rewards lint/format configs and TypeScript adoption
// on top of a fixed base.
func maintainabilityMetric(snap *domain.Snapshot) int {
	score := 70

	if snap.HasPathMatching("eslint", ".lint") {
		score += 10
	}
	if snap.HasPathMatching("prettier") {
		score += 10
	}
	for _, f := range snap.Files {
		if strings.HasSuffix(f.Path, ".ts") || strings.HasSuffix(f.Path, ".tsx") {
			score += 15
			break
		}
	}
	return clampScore(score)
}

// testCoverageMetric approximates coverage as the ratio of test files to
// source files under src/.
func testCoverageMetric(snap *domain.Snapshot) int {
	testFiles := 0
	sourceFiles := 0
	for _, f := range snap.Files {
		if strings.Contains(f.Path, ".test.") || strings.Contains(f.Path, ".spec.") || strings.Contains(f.Path, "__tests__") {
			testFiles++
		}
		if strings.Contains(f.Path, "src/") &&
			(strings.HasSuffix(f.Path, ".js") || strings.HasSuffix(f.Path, ".ts") || strings.HasSuffix(f.Path, ".tsx")) {
			sourceFiles++
		}
	}
	if sourceFiles == 0 {
		return 0
	}
	return clampScore(testFiles * 100 / sourceFiles)
}

// documentationMetric awards fixed points per conventional document.
func documentationMetric(snap *domain.Snapshot) int {
	score := 0
	if snap.HasFileMatching("readme") {
		score += 40
	}
	if snap.HasFileMatching("changelog") {
		score += 20
	}
	if snap.HasFileMatching("contributing") {
		score += 20
	}
	if snap.HasFileMatching("license") {
		score += 20
	}
	return score
}

// clampScore keeps every score inside [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
