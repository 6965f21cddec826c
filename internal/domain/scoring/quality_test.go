package scoring_test

import (
	"fmt"
	"testing"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestScoreQuality_EmptySnapshot(t *testing.T) {
	result := scoring.ScoreQuality(&domain.Snapshot{})

	assert.Equal(t, 0, result.Metrics.Complexity, "no files means nothing to measure")
	assert.Equal(t, 70, result.Metrics.Maintainability)
	assert.Equal(t, 0, result.Metrics.TestCoverage)
	assert.Equal(t, 0, result.Metrics.Documentation)
}

func TestScoreQuality_TypedAndLintedProject(t *testing.T) {
	snap := &domain.Snapshot{
		Files: []domain.SourceFile{
			{Path: "src/App.tsx", Content: "x", Size: 100},
			{Path: "src/App.test.tsx", Content: "x", Size: 100},
			{Path: "README.md", Content: "# App", Size: 5},
		},
		Structure: []string{"src/App.tsx", "src/App.test.tsx", "README.md", ".eslintrc.json", ".prettierrc"},
	}

	result := scoring.ScoreQuality(snap)

	assert.Equal(t, 100, result.Metrics.Complexity)
	// 70 base + 10 eslint + 10 prettier + 15 TypeScript, clamped
	assert.Equal(t, 100, result.Metrics.Maintainability)
	// 1 test file / 2 source files under src/
	assert.Equal(t, 50, result.Metrics.TestCoverage)
	assert.Equal(t, 40, result.Metrics.Documentation)
	assert.Equal(t, (100+100+50+40)/4, result.Score)
}

func TestScoreQuality_LargeCodebasePenalties(t *testing.T) {
	snap := &domain.Snapshot{}
	for i := 0; i < 120; i++ {
		snap.Files = append(snap.Files, domain.SourceFile{
			Path:    fmt.Sprintf("src/mod%d.js", i),
			Content: "x",
			Size:    6000,
		})
	}

	result := scoring.ScoreQuality(snap)
	// 100 - 20 (>100 files) - 15 (avg size >5000)
	assert.Equal(t, 65, result.Metrics.Complexity)
	assert.Contains(t, result.Issues, "Insufficient test coverage")
}

func TestScoreQuality_FullDocumentation(t *testing.T) {
	snap := &domain.Snapshot{
		Files: []domain.SourceFile{
			{Path: "README.md", Content: "x", Size: 1},
			{Path: "CHANGELOG.md", Content: "x", Size: 1},
			{Path: "CONTRIBUTING.md", Content: "x", Size: 1},
			{Path: "LICENSE", Content: "x", Size: 1},
		},
	}

	result := scoring.ScoreQuality(snap)
	assert.Equal(t, 100, result.Metrics.Documentation)
}

func TestScoreQuality_IssueThresholds(t *testing.T) {
	result := scoring.ScoreQuality(&domain.Snapshot{})

	assert.Contains(t, result.Issues, "High code complexity detected")
	assert.Contains(t, result.Issues, "Insufficient test coverage")
	assert.Contains(t, result.Issues, "Poor documentation")
	assert.Len(t, result.Recommendations, 3)
}
