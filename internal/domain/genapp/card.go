package genapp

import (
	"fmt"
	"math"
	"time"

	"github.com/ece-platform/appforge/internal/domain"
)

// Base technical metrics for freshly generated applications. Complexity is
// the only project-dependent dimension.
const (
	baseQuality     = 90
	baseSecurity    = 95
	baseScalability = 85
)

// BuildCard assembles the trading card for a newly generated application.
func BuildCard(details domain.ProjectDetails, generationID string) domain.CardData {
	return domain.CardData{
		Name:        details.Title,
		Description: details.Description,
		Technical: domain.TechnicalMetrics{
			Quality:     baseQuality,
			Complexity:  details.Complexity * 20,
			Security:    baseSecurity,
			Scalability: baseScalability,
		},
		Business: domain.BusinessMetrics{
			MarketSize:        10_000_000,
			RevenueProjection: 500_000,
			GrowthRate:        25,
		},
		Battle: domain.BattleStats{
			Attack:  85,
			Defense: 90,
			Speed:   80,
			Special: 88,
			Overall: 86,
		},
		Rarity:  domain.RarityFor(details.Complexity),
		Artwork: fmt.Sprintf("/api/artwork/generated/%s", generationID),
	}
}

// BuildEnhancedCard assembles the card for an enhanced external codebase.
// Technical metrics receive the fixed enhancement boosts and the rarity tier
// is always ENHANCED.
func BuildEnhancedCard(base domain.TechnicalMetrics, details domain.ProjectDetails, now time.Time) domain.CardData {
	boosted := base.Boost()
	return domain.CardData{
		Name:        details.Title,
		Description: details.Description,
		Technical:   boosted,
		Business: domain.BusinessMetrics{
			MarketSize:        15_000_000,
			RevenueProjection: 750_000,
			GrowthRate:        35,
		},
		Battle: domain.BattleStats{
			Attack:  math.Min(100, boosted.Quality*1.1),
			Defense: math.Min(100, boosted.Security*1.05),
			Speed:   85,
			Special: 92,
			Overall: 89,
		},
		Rarity:  domain.RarityEnhanced,
		Artwork: fmt.Sprintf("/api/artwork/enhanced/%d", now.Unix()),
	}
}

// MetricsFromAnalysis converts viability analysis scores into card metrics
// for the enhancement flow.
func MetricsFromAnalysis(analysis domain.Analysis, complexity float64) domain.TechnicalMetrics {
	return domain.TechnicalMetrics{
		Quality:     float64(analysis.Quality.Score),
		Complexity:  complexity * 20,
		Security:    float64(analysis.Security.Score),
		Scalability: float64(analysis.Structure.Score),
	}
}
