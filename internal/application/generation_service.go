package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ece-platform/appforge/internal/domain"
	"github.com/ece-platform/appforge/internal/domain/genapp"
)

// GenerationService runs the app generation and codebase enhancement flows.
// Both validate the order and balance first and report failures inside the
// result instead of as errors, so every request gets a uniform outcome.
type GenerationService struct {
	users     domain.UserStore
	orders    domain.OrderStore
	apps      domain.AppStore
	viability *ViabilityService
	synth     *genapp.Synthesizer
	log       *slog.Logger

	// Overridable in tests for deterministic IDs and timestamps.
	newID func() string
	now   func() time.Time
}

func NewGenerationService(
	users domain.UserStore,
	orders domain.OrderStore,
	apps domain.AppStore,
	viability *ViabilityService,
	synth *genapp.Synthesizer,
	log *slog.Logger,
) *GenerationService {
	if log == nil {
		log = slog.Default()
	}
	return &GenerationService{
		users:     users,
		orders:    orders,
		apps:      apps,
		viability: viability,
		synth:     synth,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// GenerateApplication builds a new application from a template and records
// it with its trading card.
func (s *GenerationService) GenerateApplication(ctx context.Context, req domain.GenerationRequest) *domain.GenerationResult {
	order, err := s.authorize(req)
	if err != nil {
		return failedGeneration(err)
	}

	generationID := s.newID()
	if err := s.orders.MarkInProgress(order.ID, generationID); err != nil {
		return failedGeneration(fmt.Errorf("updating order: %w", err))
	}
	s.log.Info("generation started", "order", order.ID, "generation", generationID)

	tmpl := genapp.SelectTemplate(genapp.TemplateRequest{
		ProjectType: req.ProjectDetails.ProjectType,
		Complexity:  req.ProjectDetails.Complexity,
		Features:    req.ProjectDetails.Features,
	})

	app := &domain.GeneratedApp{
		ID:            generationID,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Name:          req.ProjectDetails.Title,
		Description:   req.ProjectDetails.Description,
		SourceCode:    s.synth.Synthesize(tmpl, req.ProjectDetails),
		DeploymentURL: fmt.Sprintf("https://%s.ece-apps.com", generationID),
		PreviewURL:    fmt.Sprintf("https://preview-%s.ece-apps.com", generationID),
		Card:          genapp.BuildCard(req.ProjectDetails, generationID),
		CreatedAt:     s.now(),
	}

	if err := s.apps.SaveApp(app); err != nil {
		return failedGeneration(fmt.Errorf("persisting app: %w", err))
	}

	s.log.Info("generation completed", "generation", generationID, "template", tmpl.ID, "rarity", app.Card.Rarity)
	return &domain.GenerationResult{
		Success:        true,
		GeneratedApp:   app,
		RevisionTokens: domain.DefaultRevisionTokens,
	}
}

// EnhanceCodebase analyzes an existing codebase and, when viable, produces
// an enhanced application carrying a boosted card.
func (s *GenerationService) EnhanceCodebase(ctx context.Context, req domain.GenerationRequest) *domain.GenerationResult {
	details := req.ProjectDetails
	if details.TargetCodebaseURL == "" {
		return failedGeneration(fmt.Errorf("target codebase URL is required for enhancement"))
	}

	viability := s.viability.CheckViability(ctx, details.TargetCodebaseURL,
		domain.WithBranch(details.Branch),
		domain.WithAccessToken(details.AccessToken),
	)
	if !viability.IsViable {
		return failedGeneration(fmt.Errorf("codebase enhancement rejected: %s", viability.Reason))
	}

	order, err := s.authorize(req)
	if err != nil {
		return failedGeneration(err)
	}

	generationID := s.newID()
	if err := s.orders.MarkInProgress(order.ID, generationID); err != nil {
		return failedGeneration(fmt.Errorf("updating order: %w", err))
	}
	s.log.Info("enhancement started", "order", order.ID, "generation", generationID, "target", details.TargetCodebaseURL)

	base := domain.SourceBundle{
		Frontend:   fmt.Sprintf("// Imported frontend from %s", details.TargetCodebaseURL),
		Backend:    fmt.Sprintf("// Imported backend from %s", details.TargetCodebaseURL),
		Database:   fmt.Sprintf("-- Imported schema from %s", details.TargetCodebaseURL),
		Deployment: fmt.Sprintf("# Imported deployment from %s", details.TargetCodebaseURL),
	}

	now := s.now()
	metrics := genapp.MetricsFromAnalysis(viability.Analysis, details.Complexity)
	app := &domain.GeneratedApp{
		ID:            generationID,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Name:          details.Title,
		Description:   details.Description,
		SourceCode:    genapp.EnhanceBundle(base),
		DeploymentURL: fmt.Sprintf("https://%s.ece-apps.com", generationID),
		PreviewURL:    fmt.Sprintf("https://preview-%s.ece-apps.com", generationID),
		Card:          genapp.BuildEnhancedCard(metrics, details, now),
		CreatedAt:     now,
	}

	if err := s.apps.SaveApp(app); err != nil {
		return failedGeneration(fmt.Errorf("persisting app: %w", err))
	}

	s.log.Info("enhancement completed", "generation", generationID, "score", viability.Score)
	return &domain.GenerationResult{
		Success:        true,
		GeneratedApp:   app,
		RevisionTokens: domain.DefaultRevisionTokens,
	}
}

// authorize resolves the user and order and verifies the balance covers the
// order's estimated cost.
func (s *GenerationService) authorize(req domain.GenerationRequest) (*domain.Order, error) {
	user, err := s.users.FindByWallet(req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	order, err := s.orders.FindOrder(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	if order.UserID != user.ID {
		return nil, fmt.Errorf("order %s does not belong to user %s", order.ID, user.ID)
	}
	if user.ECEBalance < order.EstimatedCost {
		return nil, fmt.Errorf("insufficient ECE balance: have %.2f, need %.2f", user.ECEBalance, order.EstimatedCost)
	}
	return order, nil
}

func failedGeneration(err error) *domain.GenerationResult {
	return &domain.GenerationResult{
		Success: false,
		Error:   err.Error(),
	}
}
