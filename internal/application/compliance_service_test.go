package application_test

import (
	"testing"

	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/genapp"
	"github.com/stretchr/testify/assert"
)

func TestComplianceService_GeneratedBundleIsCompliant(t *testing.T) {
	schema := domain.DefaultBrandingSchema()
	synth := genapp.NewSynthesizer(schema)
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "saas dashboard",
		Complexity:  0.8,
		Features:    []string{"analytics"},
	})
	bundle := synth.Synthesize(tmpl, domain.ProjectDetails{Title: "Metrics Hub", ProjectType: "SAAS_DASHBOARD"})

	svc := application.NewComplianceService(schema, nil)
	report := svc.ValidateBundle(bundle)

	assert.True(t, report.IsCompliant, "own output must satisfy own standards: %+v", report.Violations)
	assert.Equal(t, 100, report.Score)
}

func TestComplianceService_FlagsForeignCode(t *testing.T) {
	svc := application.NewComplianceService(domain.DefaultBrandingSchema(), nil)

	report := svc.ValidateCode(`export default function App() { return <div/>; }`)

	assert.False(t, report.IsCompliant)
	assert.NotEmpty(t, report.Violations)
}

func TestComplianceService_RenderReport(t *testing.T) {
	svc := application.NewComplianceService(domain.DefaultBrandingSchema(), nil)
	report := svc.ValidateCode("")

	md := svc.RenderReport(report)
	assert.Contains(t, md, "Compliance Report")
}
