// Package genapp selects scaffold templates and synthesizes application
// source bundles and their trading-card summaries.
package genapp

import (
	"math"
	"sort"
	"strings"
)

// Template describes a scaffold pattern curated from reference applications.
type Template struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Complexity       float64  `json:"complexity"`
	Features         []string `json:"features"`
	Navigation       string   `json:"navigation"` // header, sidebar, bottom, tabs
	Layout           string   `json:"layout"`     // single-column, two-column, three-column, grid
	Components       []string `json:"components"`
	PerformanceScore int      `json:"performanceScore"`
}

// TemplateRequest narrows the catalog to a project's needs.
type TemplateRequest struct {
	ProjectType string
	Complexity  float64
	Features    []string
}

var catalog = []Template{
	{
		ID: "saas-dashboard", Name: "SaaS Dashboard", Category: "BUSINESS", Complexity: 0.8,
		Features:   []string{"analytics", "user-management", "billing", "settings", "notifications"},
		Navigation: "sidebar", Layout: "two-column",
		Components:       []string{"data-table", "charts", "stats-cards", "filters", "search"},
		PerformanceScore: 90,
	},
	{
		ID: "ecommerce-store", Name: "E-commerce Store", Category: "RETAIL", Complexity: 0.9,
		Features:   []string{"product-catalog", "shopping-cart", "checkout", "user-accounts", "reviews"},
		Navigation: "header", Layout: "grid",
		Components:       []string{"product-grid", "filters", "cart", "checkout-flow", "product-detail"},
		PerformanceScore: 85,
	},
	{
		ID: "social-platform", Name: "Social Platform", Category: "SOCIAL", Complexity: 1.2,
		Features:   []string{"feeds", "messaging", "profiles", "content-creation", "notifications"},
		Navigation: "bottom", Layout: "single-column",
		Components:       []string{"feed", "stories", "chat", "profile", "media-upload"},
		PerformanceScore: 80,
	},
	{
		ID: "fintech-app", Name: "Fintech Application", Category: "FINANCE", Complexity: 1.4,
		Features:   []string{"transactions", "account-overview", "budgeting", "investments", "security"},
		Navigation: "tabs", Layout: "single-column",
		Components:       []string{"account-cards", "transaction-list", "charts", "quick-actions", "security-center"},
		PerformanceScore: 95,
	},
	{
		ID: "healthcare-portal", Name: "Healthcare Portal", Category: "HEALTHCARE", Complexity: 1.1,
		Features:   []string{"appointments", "medical-records", "prescriptions", "telemedicine", "health-tracking"},
		Navigation: "sidebar", Layout: "two-column",
		Components:       []string{"calendar", "medical-history", "vitals-dashboard", "prescription-tracker"},
		PerformanceScore: 88,
	},
	{
		ID: "education-platform", Name: "Education Platform", Category: "EDUCATION", Complexity: 1.0,
		Features:   []string{"courses", "progress-tracking", "assignments", "discussions", "certificates"},
		Navigation: "header", Layout: "three-column",
		Components:       []string{"course-grid", "video-player", "progress-bars", "quiz-interface", "discussion-forum"},
		PerformanceScore: 82,
	},
}

var categoryTerms = map[string][]string{
	"business":   {"saas", "dashboard", "crm", "erp", "analytics"},
	"retail":     {"ecommerce", "store", "marketplace", "shopping"},
	"social":     {"social", "community", "messaging", "networking"},
	"finance":    {"fintech", "banking", "investment", "payment", "crypto"},
	"healthcare": {"medical", "health", "wellness", "telemedicine"},
	"education":  {"learning", "course", "training", "academic", "tutorial"},
}

// Catalog returns a copy of the built-in template set.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// SelectTemplate finds the best catalog match for a request, falling back to
// a generic web-application template when nothing fits.
func SelectTemplate(req TemplateRequest) Template {
	var matches []Template
	for _, t := range catalog {
		if !matchesCategory(t, req) {
			continue
		}
		if math.Abs(t.Complexity-req.Complexity) > 0.3 {
			continue
		}
		if featureMatch(t.Features, req.Features) <= 0.3 {
			continue
		}
		matches = append(matches, t)
	}

	if len(matches) == 0 {
		return defaultTemplate(req)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matchScore(matches[i], req) > matchScore(matches[j], req)
	})
	return customize(matches[0], req)
}

func matchesCategory(t Template, req TemplateRequest) bool {
	projectType := strings.ToLower(req.ProjectType)
	for _, term := range categoryTerms[strings.ToLower(t.Category)] {
		if strings.Contains(projectType, term) {
			return true
		}
	}
	return false
}

// featureMatch is the fraction of requested features covered by the
// template, with substring matching in either direction. An empty request
// is neutral.
func featureMatch(templateFeatures, requested []string) float64 {
	if len(requested) == 0 {
		return 0.5
	}
	matched := 0
	for _, want := range requested {
		w := strings.ToLower(want)
		for _, have := range templateFeatures {
			h := strings.ToLower(have)
			if strings.Contains(h, w) || strings.Contains(w, h) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requested))
}

func matchScore(t Template, req TemplateRequest) float64 {
	complexityScore := 1 - math.Abs(t.Complexity-req.Complexity)
	featureScore := featureMatch(t.Features, req.Features)
	performanceScore := float64(t.PerformanceScore) / 100
	return complexityScore*0.3 + featureScore*0.4 + performanceScore*0.3
}

// customize merges requested features into the template and averages the
// complexity when the gap is meaningful.
func customize(t Template, req TemplateRequest) Template {
	for _, f := range req.Features {
		found := false
		for _, have := range t.Features {
			if have == f {
				found = true
				break
			}
		}
		if !found {
			t.Features = append(t.Features, f)
		}
	}
	if math.Abs(t.Complexity-req.Complexity) > 0.1 {
		t.Complexity = (t.Complexity + req.Complexity) / 2
	}
	return t
}

func defaultTemplate(req TemplateRequest) Template {
	return Template{
		ID:               "default-web-app",
		Name:             "Default Web Application",
		Category:         "GENERAL",
		Complexity:       req.Complexity,
		Features:         req.Features,
		Navigation:       "header",
		Layout:           "single-column",
		Components:       []string{"header", "main-content", "sidebar", "footer"},
		PerformanceScore: 85,
	}
}
