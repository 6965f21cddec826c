package genapp_test

import (
	"testing"

	"github.com/ece-platform/appforge/internal/domain/genapp"
	"github.com/stretchr/testify/assert"
)

func TestSelectTemplate_SaaSDashboard(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "saas dashboard",
		Complexity:  0.8,
		Features:    []string{"analytics", "billing"},
	})

	assert.Equal(t, "saas-dashboard", tmpl.ID)
	assert.Equal(t, "sidebar", tmpl.Navigation)
}

func TestSelectTemplate_Ecommerce(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "ecommerce marketplace",
		Complexity:  0.9,
		Features:    []string{"checkout", "reviews"},
	})

	assert.Equal(t, "ecommerce-store", tmpl.ID)
}

func TestSelectTemplate_FallbackWhenNoCategoryMatches(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "weather station firmware",
		Complexity:  0.7,
		Features:    []string{"telemetry"},
	})

	assert.Equal(t, "default-web-app", tmpl.ID)
	assert.Equal(t, 0.7, tmpl.Complexity, "default inherits requested complexity")
	assert.Equal(t, []string{"telemetry"}, tmpl.Features)
}

func TestSelectTemplate_FallbackWhenComplexityTooFar(t *testing.T) {
	// fintech matches by category but 1.4 vs 0.5 exceeds the 0.3 window
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "fintech banking",
		Complexity:  0.5,
		Features:    []string{"transactions"},
	})

	assert.Equal(t, "default-web-app", tmpl.ID)
}

func TestSelectTemplate_MergesRequestedFeatures(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "saas analytics dashboard",
		Complexity:  0.8,
		Features:    []string{"analytics", "audit-log"},
	})

	assert.Equal(t, "saas-dashboard", tmpl.ID)
	assert.Contains(t, tmpl.Features, "audit-log", "unmatched requested features are merged in")
	assert.Contains(t, tmpl.Features, "billing", "template features are kept")
}

func TestSelectTemplate_AveragesComplexityWhenGapIsLarge(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "saas dashboard",
		Complexity:  1.0,
		Features:    []string{"analytics", "billing", "settings"},
	})

	// |0.8 - 1.0| > 0.1 so the result averages to 0.9
	assert.Equal(t, "saas-dashboard", tmpl.ID)
	assert.InDelta(t, 0.9, tmpl.Complexity, 0.0001)
}

func TestSelectTemplate_KeepsComplexityWhenClose(t *testing.T) {
	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: "saas dashboard",
		Complexity:  0.85,
		Features:    []string{"analytics", "billing"},
	})

	assert.Equal(t, 0.8, tmpl.Complexity)
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	a := genapp.Catalog()
	a[0].ID = "mutated"
	b := genapp.Catalog()
	assert.NotEqual(t, "mutated", b[0].ID)
}
