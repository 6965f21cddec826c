package domain

import "time"

// GeneratedApp is the persisted output of a generation or enhancement run.
type GeneratedApp struct {
	ID            string       `json:"id"`
	OrderID       string       `json:"orderId"`
	UserID        string       `json:"userId"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	SourceCode    SourceBundle `json:"sourceCode"`
	DeploymentURL string       `json:"deploymentUrl,omitempty"`
	PreviewURL    string       `json:"previewUrl,omitempty"`
	Card          CardData     `json:"cardData"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// SourceBundle holds the four synthesized text blobs.
type SourceBundle struct {
	Frontend   string `json:"frontend"`
	Backend    string `json:"backend"`
	Database   string `json:"database"`
	Deployment string `json:"deployment"`
}

// CardData is the gamified summary attached to a generated app for the
// marketplace UI.
type CardData struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Technical   TechnicalMetrics `json:"technicalMetrics"`
	Business    BusinessMetrics  `json:"businessMetrics"`
	Battle      BattleStats      `json:"battleStats"`
	Rarity      Rarity           `json:"rarity"`
	Artwork     string           `json:"artwork"`
}

type TechnicalMetrics struct {
	Quality     float64 `json:"quality"`
	Complexity  float64 `json:"complexity"`
	Security    float64 `json:"security"`
	Scalability float64 `json:"scalability"`
}

type BusinessMetrics struct {
	MarketSize        int64   `json:"marketSize"`
	RevenueProjection int64   `json:"revenueProjection"`
	GrowthRate        float64 `json:"growthRate"`
}

type BattleStats struct {
	Attack  float64 `json:"attack"`
	Defense float64 `json:"defense"`
	Speed   float64 `json:"speed"`
	Special float64 `json:"special"`
	Overall float64 `json:"overall"`
}

type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
	RarityEnhanced  Rarity = "ENHANCED"
)

// RarityFor maps a project complexity multiplier to a card rarity tier.
func RarityFor(complexity float64) Rarity {
	switch {
	case complexity >= 1.4:
		return RarityLegendary
	case complexity >= 1.2:
		return RarityEpic
	case complexity >= 1.0:
		return RarityRare
	default:
		return RarityCommon
	}
}

// Enhancement boost factors. Boosted metrics are capped at 100.
const (
	BoostQuality     = 1.3
	BoostSecurity    = 1.2
	BoostScalability = 1.4
)

// Boost multiplies base technical metrics by the fixed enhancement factors.
// Complexity is carried over unchanged.
func (m TechnicalMetrics) Boost() TechnicalMetrics {
	return TechnicalMetrics{
		Quality:     capMetric(m.Quality * BoostQuality),
		Complexity:  m.Complexity,
		Security:    capMetric(m.Security * BoostSecurity),
		Scalability: capMetric(m.Scalability * BoostScalability),
	}
}

func capMetric(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}

// User is the minimal account view needed for balance validation.
type User struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"walletAddress"`
	ECEBalance    float64 `json:"eceBalance"`
}

// Order is an app-generation order awaiting fulfilment.
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	EstimatedCost float64   `json:"estimatedCost"`
	Status        string    `json:"status"`
	GenerationID  string    `json:"generationId,omitempty"`
	StartedAt     time.Time `json:"startedAt,omitempty"`
}

const (
	OrderStatusPending    = "PENDING"
	OrderStatusInProgress = "IN_PROGRESS"
	OrderStatusCompleted  = "COMPLETED"
)

// ProjectDetails describes what the caller wants built or enhanced.
type ProjectDetails struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	ProjectType       string   `json:"projectType,omitempty"`
	Features          []string `json:"features"`
	Complexity        float64  `json:"complexity"`
	Timeline          string   `json:"timeline,omitempty"`
	Requirements      string   `json:"requirements,omitempty"`
	EnhancementTarget string   `json:"enhancementTarget,omitempty"`
	TargetCodebaseURL string   `json:"targetCodebaseUrl,omitempty"`
	Branch            string   `json:"branch,omitempty"`
	AccessToken       string   `json:"accessToken,omitempty"`
}

// GenerationRequest is the full input to generation and enhancement flows.
type GenerationRequest struct {
	OrderID        string         `json:"orderId"`
	UserID         string         `json:"userId"`
	WalletAddress  string         `json:"walletAddress"`
	ProjectDetails ProjectDetails `json:"projectDetails"`
}

// GenerationResult is the uniform outcome shape of both flows. Failures
// carry a single message and zero revision tokens.
type GenerationResult struct {
	Success        bool          `json:"success"`
	GeneratedApp   *GeneratedApp `json:"generatedApp,omitempty"`
	Error          string        `json:"error,omitempty"`
	RevisionTokens int           `json:"revisionTokens"`
}

// DefaultRevisionTokens is granted with every successful generation.
const DefaultRevisionTokens = 3
