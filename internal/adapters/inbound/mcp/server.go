// Package mcp exposes viability analysis, generation, and branding audits
// as MCP tools for AI coding agents.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ece-platform/appforge/internal/application"
)

// NewAppForgeMCPServer creates an MCP server with all AppForge tools
// registered.
func NewAppForgeMCPServer(
	viability *application.ViabilityService,
	generation *application.GenerationService,
	compliance *application.ComplianceService,
	version string,
) *server.MCPServer {
	s := server.NewMCPServer(
		"appforge",
		version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, viability, generation, compliance)
	return s
}

// Serve runs the MCP server over stdio until the client disconnects.
func Serve(
	viability *application.ViabilityService,
	generation *application.GenerationService,
	compliance *application.ComplianceService,
	version string,
) error {
	return server.ServeStdio(NewAppForgeMCPServer(viability, generation, compliance, version))
}
