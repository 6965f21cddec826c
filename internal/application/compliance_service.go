package application

import (
	"log/slog"
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/branding"
)

// ComplianceService audits source text against a branding schema. It is a
// standalone review tool for humans and CI; the generation pipeline does not
// gate on it.
type ComplianceService struct {
	schema domain.BrandingSchema
	log    *slog.Logger
}

func NewComplianceService(schema domain.BrandingSchema, log *slog.Logger) *ComplianceService {
	if log == nil {
		log = slog.Default()
	}
	return &ComplianceService{schema: schema, log: log}
}

// Schema returns the schema the service audits against.
func (s *ComplianceService) Schema() domain.BrandingSchema {
	return s.schema
}

// ValidateCode audits a single source text.
func (s *ComplianceService) ValidateCode(code string) branding.ComplianceReport {
	report := branding.ValidateCompliance(code, s.schema)
	s.log.Info("compliance audit finished",
		"score", report.Score,
		"violations", len(report.Violations),
		"compliant", report.IsCompliant,
	)
	return report
}

// ValidateBundle audits a generated source bundle as one document, so
// requirements satisfied in any blob count for the whole app.
func (s *ComplianceService) ValidateBundle(bundle domain.SourceBundle) branding.ComplianceReport {
	joined := strings.Join([]string{
		bundle.Frontend,
		bundle.Backend,
		bundle.Database,
		bundle.Deployment,
	}, "\n")
	return s.ValidateCode(joined)
}

// RenderReport formats a report as Markdown.
func (s *ComplianceService) RenderReport(report branding.ComplianceReport) string {
	return branding.RenderReport(report)
}
