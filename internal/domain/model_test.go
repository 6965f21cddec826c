package domain_test

import (
	"testing"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOverallScore_Weighting(t *testing.T) {
	// 80*0.20 + 90*0.40 + 70*0.25 + 60*0.15 = 16 + 36 + 17.5 + 9 = 78.5 -> 79
	assert.Equal(t, 79, domain.OverallScore(80, 90, 70, 60))
}

func TestOverallScore_AllPerfect(t *testing.T) {
	assert.Equal(t, 100, domain.OverallScore(100, 100, 100, 100))
}

func TestOverallScore_AllZero(t *testing.T) {
	assert.Equal(t, 0, domain.OverallScore(0, 0, 0, 0))
}

func TestOverallScore_RoundsHalfUp(t *testing.T) {
	// 50*0.20 + 50*0.40 + 50*0.25 + 53*0.15 = 10 + 20 + 12.5 + 7.95 = 50.45 -> 50
	assert.Equal(t, 50, domain.OverallScore(50, 50, 50, 53))
}

func TestViable_RequiresBothGates(t *testing.T) {
	assert.True(t, domain.Viable(60, 70))
	assert.False(t, domain.Viable(59, 100), "overall below threshold")
	assert.False(t, domain.Viable(100, 69), "security gate fails regardless of overall")
	assert.False(t, domain.Viable(0, 0))
}

func TestViabilityReason_SecurityTakesPriority(t *testing.T) {
	reason := domain.ViabilityReason(30, 50)
	assert.Contains(t, reason, "security")
}

func TestViabilityReason_Thresholds(t *testing.T) {
	assert.Contains(t, domain.ViabilityReason(35, 80), "major refactoring")
	assert.Contains(t, domain.ViabilityReason(50, 80), "Moderate issues")
	assert.Contains(t, domain.ViabilityReason(75, 80), "meets minimum requirements")
}

func TestFailedResult_Shape(t *testing.T) {
	result := domain.FailedResult("analysis failed: boom")

	assert.False(t, result.IsViable)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, "analysis failed: boom", result.Reason)
	assert.Nil(t, result.EnhancementPlan)
	assert.Equal(t, "unknown", result.Analysis.Compatibility.Framework)
	assert.NotNil(t, result.Analysis.Security.Vulnerabilities)
	assert.Empty(t, result.Analysis.Security.Vulnerabilities)
}
