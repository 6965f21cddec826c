// Package httpapi exposes generation, enhancement, and analysis over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ece-platform/appforge/internal/application"
	"github.com/ece-platform/appforge/internal/domain"
)

// Error codes returned in response bodies.
const (
	codeValidation        = "VALIDATION_ERROR"
	codeNotViable         = "CODEBASE_NOT_VIABLE"
	codeEnhancementFailed = "ENHANCEMENT_FAILED"
	codeGenerationFailed  = "GENERATION_FAILED"
	codeInternal          = "INTERNAL_ERROR"
)

// Server is the HTTP surface of the platform.
type Server struct {
	engine     *gin.Engine
	viability  *application.ViabilityService
	generation *application.GenerationService
	compliance *application.ComplianceService
	apps       domain.AppStore
	log        *slog.Logger
}

func New(
	viability *application.ViabilityService,
	generation *application.GenerationService,
	compliance *application.ComplianceService,
	apps domain.AppStore,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:     gin.New(),
		viability:  viability,
		generation: generation,
		compliance: compliance,
		apps:       apps,
		log:        log,
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.health)

	gen := api.Group("/app-generator")
	gen.POST("/generate", s.generate)
	gen.POST("/enhance", s.enhance)
	gen.GET("/enhance", s.enhancePreCheck)

	api.GET("/apps", s.listApps)
	api.GET("/apps/:id", s.getApp)

	api.POST("/branding/validate", s.validateBranding)
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "appforge",
	})
}
