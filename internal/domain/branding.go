package domain

// BrandingSchema is the versioned design-system and security contract every
// generated application must satisfy. It is immutable reference data:
// services receive a value at construction time and never mutate it, so
// tests and deployments can substitute alternate schemas.
type BrandingSchema struct {
	Version    string           `json:"version" yaml:"version"`
	Compliance ComplianceRules  `json:"compliance" yaml:"compliance"`
	Colors     BrandColors      `json:"colors" yaml:"colors"`
	Typography BrandTypography  `json:"typography" yaml:"typography"`
	Spacing    BrandSpacing     `json:"spacing" yaml:"spacing"`
	Logo       BrandLogo        `json:"logo" yaml:"logo"`
	Layout     BrandLayout      `json:"layout" yaml:"layout"`
	Components BrandComponents  `json:"components" yaml:"components"`
	A11y       BrandA11y        `json:"accessibility" yaml:"accessibility"`
	Security   BrandSecurity    `json:"security" yaml:"security"`
}

type ComplianceRules struct {
	Level             string   `json:"level" yaml:"level"` // STRICT, ENFORCED, MANDATORY
	AllowedViolations int      `json:"allowedViolations" yaml:"allowed_violations"`
	Severity          Severity `json:"severity" yaml:"severity"`
}

type BrandColors struct {
	Primary    string   `json:"primary" yaml:"primary"`
	Secondary  string   `json:"secondary" yaml:"secondary"`
	Accent     string   `json:"accent" yaml:"accent"`
	Background struct {
		Primary   string   `json:"primary" yaml:"primary"`
		Secondary string   `json:"secondary" yaml:"secondary"`
		Gradient  []string `json:"gradient" yaml:"gradient"`
	} `json:"background" yaml:"background"`
	Text struct {
		Primary   string `json:"primary" yaml:"primary"`
		Secondary string `json:"secondary" yaml:"secondary"`
		Accent    string `json:"accent" yaml:"accent"`
		Muted     string `json:"muted" yaml:"muted"`
	} `json:"text" yaml:"text"`
	Success string `json:"success" yaml:"success"`
	Warning string `json:"warning" yaml:"warning"`
	Error   string `json:"error" yaml:"error"`
	Info    string `json:"info" yaml:"info"`
}

type BrandTypography struct {
	FontFamily struct {
		Primary   string `json:"primary" yaml:"primary"`
		Secondary string `json:"secondary" yaml:"secondary"`
		Monospace string `json:"monospace" yaml:"monospace"`
	} `json:"fontFamily" yaml:"font_family"`
	FontSizes   map[string]string `json:"fontSize" yaml:"font_size"`
	FontWeights map[string]int    `json:"fontWeight" yaml:"font_weight"`
}

type BrandSpacing struct {
	Unit  int   `json:"unit" yaml:"unit"` // base spacing unit in pixels
	Scale []int `json:"scale" yaml:"scale"`
}

type BrandLogo struct {
	URL    string `json:"url" yaml:"url"`
	Alt    string `json:"alt" yaml:"alt"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

type BrandLayout struct {
	HeaderHeight      string            `json:"headerHeight" yaml:"header_height"`
	FooterHeight      string            `json:"footerHeight" yaml:"footer_height"`
	SidebarWidth      string            `json:"sidebarWidth" yaml:"sidebar_width"`
	ContainerMaxWidth string            `json:"containerMaxWidth" yaml:"container_max_width"`
	Breakpoints       map[string]string `json:"breakpoints" yaml:"breakpoints"`
}

type BrandComponents struct {
	ButtonVariants    []string `json:"buttonVariants" yaml:"button_variants"`
	CardVariants      []string `json:"cardVariants" yaml:"card_variants"`
	NavigationStyle   string   `json:"navigationStyle" yaml:"navigation_style"`
	FooterStyle       string   `json:"footerStyle" yaml:"footer_style"`
	FooterMustInclude []string `json:"footerMustInclude" yaml:"footer_must_include"`
}

type BrandA11y struct {
	MinContrast      float64  `json:"minContrast" yaml:"min_contrast"`           // WCAG AA
	EnhancedContrast float64  `json:"enhancedContrast" yaml:"enhanced_contrast"` // WCAG AAA
	FocusStyle       string   `json:"focusStyle" yaml:"focus_style"`
	ScreenReader     []string `json:"screenReaderLabels" yaml:"screen_reader_labels"`
}

type BrandSecurity struct {
	CSPDirectives   []string `json:"cspDirectives" yaml:"csp_directives"`
	RequiredHeaders []string `json:"requiredHeaders" yaml:"required_headers"`
	AuthProvider    string   `json:"authProvider" yaml:"auth_provider"`
}

// DefaultBrandingSchema returns the platform's v2.0.0 branding contract.
func DefaultBrandingSchema() BrandingSchema {
	s := BrandingSchema{
		Version: "2.0.0",
		Compliance: ComplianceRules{
			Level:             "STRICT",
			AllowedViolations: 0,
			Severity:          SeverityCritical,
		},
		Typography: BrandTypography{
			FontSizes: map[string]string{
				"xs": "0.75rem", "sm": "0.875rem", "base": "1rem", "lg": "1.125rem",
				"xl": "1.25rem", "2xl": "1.5rem", "3xl": "1.875rem", "4xl": "2.25rem",
			},
			FontWeights: map[string]int{
				"light": 300, "normal": 400, "medium": 500,
				"semibold": 600, "bold": 700, "extrabold": 800,
			},
		},
		Spacing: BrandSpacing{
			Unit:  4,
			Scale: []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24, 32, 40, 48, 56, 64},
		},
		Logo: BrandLogo{
			URL:    "/api/branding/logo",
			Alt:    "ECE Platform",
			Width:  120,
			Height: 32,
		},
		Layout: BrandLayout{
			HeaderHeight:      "4rem",
			FooterHeight:      "6rem",
			SidebarWidth:      "16rem",
			ContainerMaxWidth: "1280px",
			Breakpoints: map[string]string{
				"sm": "640px", "md": "768px", "lg": "1024px", "xl": "1280px", "2xl": "1536px",
			},
		},
		Components: BrandComponents{
			ButtonVariants:  []string{"primary", "secondary", "outline", "ghost", "destructive"},
			CardVariants:    []string{"glass", "solid", "outlined", "elevated"},
			NavigationStyle: "header",
			FooterStyle:     "minimal",
			FooterMustInclude: []string{
				"Powered by ECE Platform",
				"Built with ECE Standards",
				"ThirdWeb Authentication",
			},
		},
		A11y: BrandA11y{
			MinContrast:      4.5,
			EnhancedContrast: 7.0,
			FocusStyle:       "2px solid #3B82F6",
			ScreenReader: []string{
				"Skip to main content", "Main navigation", "Search", "User menu", "Close dialog",
			},
		},
		Security: BrandSecurity{
			CSPDirectives: []string{
				"default-src 'self'",
				"script-src 'self' 'unsafe-inline' https://embed.thirdweb.com",
				"style-src 'self' 'unsafe-inline'",
				"img-src 'self' data: https:",
				"font-src 'self' https://fonts.gstatic.com",
				"connect-src 'self' https://api.thirdweb.com wss://ws.thirdweb.com",
			},
			RequiredHeaders: []string{
				"X-Frame-Options: DENY",
				"X-Content-Type-Options: nosniff",
				"Referrer-Policy: strict-origin-when-cross-origin",
				"Permissions-Policy: camera=(), microphone=(), geolocation=()",
			},
			AuthProvider: "thirdweb",
		},
	}

	s.Colors.Primary = "#3B82F6"   // Blue 500
	s.Colors.Secondary = "#8B5CF6" // Purple 500
	s.Colors.Accent = "#06B6D4"    // Cyan 500
	s.Colors.Background.Primary = "#0F172A"
	s.Colors.Background.Secondary = "#1E293B"
	s.Colors.Background.Gradient = []string{"from-gray-900", "via-blue-900/20", "to-purple-900/20"}
	s.Colors.Text.Primary = "#F8FAFC"
	s.Colors.Text.Secondary = "#CBD5E1"
	s.Colors.Text.Accent = "#38BDF8"
	s.Colors.Text.Muted = "#64748B"
	s.Colors.Success = "#10B981"
	s.Colors.Warning = "#F59E0B"
	s.Colors.Error = "#EF4444"
	s.Colors.Info = "#3B82F6"

	s.Typography.FontFamily.Primary = "Inter, system-ui, sans-serif"
	s.Typography.FontFamily.Secondary = "JetBrains Mono, monospace"
	s.Typography.FontFamily.Monospace = "Fira Code, Consolas, monospace"

	return s
}
