package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ece-platform/appforge/internal/domain"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Success: false, Error: message, Code: code})
}

// generate creates a new application from a template.
func (s *Server) generate(c *gin.Context) {
	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidation, "invalid request body: "+err.Error())
		return
	}
	if missing := missingFields(req, false); len(missing) > 0 {
		fail(c, http.StatusBadRequest, codeValidation, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	result := s.generation.GenerateApplication(c.Request.Context(), req)
	if !result.Success {
		fail(c, http.StatusInternalServerError, codeGenerationFailed, result.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"generatedApp":   result.GeneratedApp,
		"revisionTokens": result.RevisionTokens,
	})
}

// enhance analyzes the target codebase and, when viable, produces an
// enhanced application. Non-viable codebases get the full analysis back so
// the caller can remediate.
func (s *Server) enhance(c *gin.Context) {
	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidation, "invalid request body: "+err.Error())
		return
	}
	if missing := missingFields(req, true); len(missing) > 0 {
		fail(c, http.StatusBadRequest, codeValidation, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	details := req.ProjectDetails
	viability := s.viability.CheckViability(c.Request.Context(), details.TargetCodebaseURL,
		domain.WithBranch(details.Branch),
		domain.WithAccessToken(details.AccessToken),
	)
	if !viability.IsViable {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":         false,
			"error":           "Codebase enhancement rejected: " + viability.Reason,
			"code":            codeNotViable,
			"viability":       viability,
			"recommendations": curateRecommendations(viability.Analysis),
		})
		return
	}

	result := s.generation.EnhanceCodebase(c.Request.Context(), req)
	if !result.Success {
		fail(c, http.StatusInternalServerError, codeEnhancementFailed, result.Error)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"generatedApp":   result.GeneratedApp,
		"revisionTokens": result.RevisionTokens,
		"viability":      viability,
	})
}

// enhancePreCheck analyzes a codebase without ordering an enhancement.
func (s *Server) enhancePreCheck(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		fail(c, http.StatusBadRequest, codeValidation, "url query parameter is required")
		return
	}

	viability := s.viability.CheckViability(c.Request.Context(), url,
		domain.WithBranch(c.Query("branch")),
	)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"viability":       viability,
		"recommendations": curateRecommendations(viability.Analysis),
	})
}

func (s *Server) listApps(c *gin.Context) {
	apps, err := s.apps.ListApps()
	if err != nil {
		fail(c, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "apps": apps})
}

func (s *Server) getApp(c *gin.Context) {
	app, err := s.apps.LoadApp(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, codeValidation, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "app": app})
}

type brandingRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) validateBranding(c *gin.Context) {
	var req brandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, codeValidation, "code field is required")
		return
	}
	report := s.compliance.ValidateCode(req.Code)
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

// missingFields lists absent required fields; enhancement additionally
// requires a target codebase URL.
func missingFields(req domain.GenerationRequest, enhancement bool) []string {
	var missing []string
	if req.OrderID == "" {
		missing = append(missing, "orderId")
	}
	if req.WalletAddress == "" {
		missing = append(missing, "walletAddress")
	}
	if req.ProjectDetails.Title == "" {
		missing = append(missing, "projectDetails.title")
	}
	if enhancement && req.ProjectDetails.TargetCodebaseURL == "" {
		missing = append(missing, "projectDetails.targetCodebaseUrl")
	}
	return missing
}

// curateRecommendations splits analysis advice into what must happen before
// enhancement and what can wait: the top security and structure items are
// immediate, compatibility and quality advice is suggested.
func curateRecommendations(analysis domain.Analysis) gin.H {
	immediate := append(
		firstN(analysis.Security.Recommendations, 3),
		firstN(analysis.Structure.Recommendations, 2)...,
	)
	suggested := append(
		append([]string{}, analysis.Compatibility.Recommendations...),
		analysis.Quality.Recommendations...,
	)
	return gin.H{
		"immediate": immediate,
		"suggested": suggested,
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
