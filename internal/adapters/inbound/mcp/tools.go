package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/genapp"
)

// registerTools registers all AppForge MCP tools on the given server.
func registerTools(
	s *server.MCPServer,
	viability *application.ViabilityService,
	generation *application.GenerationService,
	compliance *application.ComplianceService,
) {
	s.AddTool(
		mcplib.NewTool("appforge_check_viability",
			mcplib.WithDescription("Analyze a codebase and return its enhancement viability as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Codebase URL (GitHub/GitLab/Bitbucket) or local path"),
			),
			mcplib.WithString("branch", mcplib.Description("Branch to analyze (git hosts only)")),
		),
		handleCheckViability(viability),
	)

	s.AddTool(
		mcplib.NewTool("appforge_select_template",
			mcplib.WithDescription("Return the best matching application template for a project"),
			mcplib.WithString("project_type", mcplib.Required(), mcplib.Description("Project type, e.g. saas dashboard, ecommerce store")),
			mcplib.WithNumber("complexity", mcplib.Description("Complexity multiplier (default 1.0)")),
			mcplib.WithString("features", mcplib.Description("Comma-separated requested features")),
		),
		handleSelectTemplate(),
	)

	s.AddTool(
		mcplib.NewTool("appforge_generate_app",
			mcplib.WithDescription("Generate an application for an existing order and return it with its trading card"),
			mcplib.WithString("order_id", mcplib.Required(), mcplib.Description("Order to fulfil")),
			mcplib.WithString("wallet", mcplib.Required(), mcplib.Description("Wallet address of the ordering user")),
			mcplib.WithString("title", mcplib.Required(), mcplib.Description("Application title")),
			mcplib.WithString("description", mcplib.Description("Application description")),
			mcplib.WithString("project_type", mcplib.Description("Project type")),
			mcplib.WithNumber("complexity", mcplib.Description("Complexity multiplier (default 1.0)")),
			mcplib.WithString("features", mcplib.Description("Comma-separated requested features")),
		),
		handleGenerateApp(generation),
	)

	s.AddTool(
		mcplib.NewTool("appforge_validate_branding",
			mcplib.WithDescription("Audit source code against ECE branding standards and return a compliance report"),
			mcplib.WithString("code", mcplib.Required(), mcplib.Description("Source code to audit")),
		),
		handleValidateBranding(compliance),
	)
}

func handleCheckViability(viability *application.ViabilityService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		branch := request.GetString("branch", "")

		result := viability.CheckViability(ctx, url, domain.WithBranch(branch))
		return jsonResult(result)
	}
}

func handleSelectTemplate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		projectType, err := request.RequireString("project_type")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
			ProjectType: projectType,
			Complexity:  request.GetFloat("complexity", 1.0),
			Features:    splitList(request.GetString("features", "")),
		})
		return jsonResult(tmpl)
	}
}

func handleGenerateApp(generation *application.GenerationService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orderID, err := request.RequireString("order_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		wallet, err := request.RequireString("wallet")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		title, err := request.RequireString("title")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := generation.GenerateApplication(ctx, domain.GenerationRequest{
			OrderID:       orderID,
			WalletAddress: wallet,
			ProjectDetails: domain.ProjectDetails{
				Title:       title,
				Description: request.GetString("description", ""),
				ProjectType: request.GetString("project_type", ""),
				Complexity:  request.GetFloat("complexity", 1.0),
				Features:    splitList(request.GetString("features", "")),
			},
		})
		if !result.Success {
			return errorResult(fmt.Sprintf("generation failed: %s", result.Error)), nil
		}
		return jsonResult(result)
	}
}

func handleValidateBranding(compliance *application.ComplianceService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(compliance.ValidateCode(code))
	}
}

func splitList(csv string) []string {
	parts := strings.Split(csv, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
