package application

import (
	"context"
	"log/slog"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/scoring"
)

// ViabilityService orchestrates the analysis pipeline:
// classify → fetch snapshot → score four dimensions → gate → plan.
type ViabilityService struct {
	fetcher domain.CodebaseFetcher
	log     *slog.Logger
}

func NewViabilityService(fetcher domain.CodebaseFetcher, log *slog.Logger) *ViabilityService {
	if log == nil {
		log = slog.Default()
	}
	return &ViabilityService{fetcher: fetcher, log: log}
}

// CheckViability analyzes the codebase at url and decides whether it can be
// enhanced. It never returns an error: fetch and analysis failures fold into
// a zero-score non-viable result so callers always get a renderable outcome.
func (s *ViabilityService) CheckViability(ctx context.Context, url string, opts ...domain.RefOption) *domain.ViabilityResult {
	ref := domain.ClassifyCodebase(url, opts...)
	s.log.Info("analyzing codebase", "url", ref.URL, "type", ref.Kind, "branch", ref.Branch)

	snap, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		s.log.Error("codebase fetch failed", "url", ref.URL, "error", err)
		return domain.FailedResult("analysis failed: " + err.Error())
	}

	return s.Analyze(snap)
}

// Analyze scores an already-fetched snapshot.
func (s *ViabilityService) Analyze(snap *domain.Snapshot) *domain.ViabilityResult {
	analysis := domain.Analysis{
		Structure:     scoring.ScoreStructure(snap),
		Security:      scoring.ScoreSecurity(snap),
		Compatibility: scoring.ScoreCompatibility(snap),
		Quality:       scoring.ScoreQuality(snap),
	}

	overall := domain.OverallScore(
		analysis.Structure.Score,
		analysis.Security.Score,
		analysis.Compatibility.Score,
		analysis.Quality.Score,
	)
	viable := domain.Viable(overall, analysis.Security.Score)

	result := &domain.ViabilityResult{
		IsViable: viable,
		Score:    overall,
		Reason:   domain.ViabilityReason(overall, analysis.Security.Score),
		Analysis: analysis,
	}
	if viable {
		result.EnhancementPlan = scoring.BuildEnhancementPlan(analysis)
	}

	s.log.Info("viability decided",
		"score", overall,
		"security", analysis.Security.Score,
		"viable", viable,
	)
	return result
}
