package domain

import "context"

// CodebaseFetcher retrieves a codebase snapshot for analysis.
type CodebaseFetcher interface {
	Fetch(ctx context.Context, ref CodebaseRef) (*Snapshot, error)
}

// AppStore persists generated applications.
type AppStore interface {
	SaveApp(app *GeneratedApp) error
	LoadApp(id string) (*GeneratedApp, error)
	ListApps() ([]*GeneratedApp, error)
}

// UserStore resolves users for balance validation.
type UserStore interface {
	FindByWallet(walletAddress string) (*User, error)
}

// OrderStore resolves and updates generation orders.
type OrderStore interface {
	FindOrder(id string) (*Order, error)
	MarkInProgress(id, generationID string) error
}

// SchemaLoader loads a branding schema override from a file.
type SchemaLoader interface {
	Load(path string) (BrandingSchema, error)
}
