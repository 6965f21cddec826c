package fetcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ece-platform/appforge/internal/domain"
)

// Fetcher routes references to the right backend: git hosts are cloned,
// everything else is treated as a local directory path.
type Fetcher struct {
	local *LocalFetcher
	git   *GitFetcher
}

func New(log *slog.Logger) *Fetcher {
	return &Fetcher{
		local: NewLocal(),
		git:   NewGit(log),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, ref domain.CodebaseRef) (*domain.Snapshot, error) {
	switch {
	case ref.IsGitHost():
		return f.git.Fetch(ctx, ref)
	case ref.Kind == domain.SourceZip:
		return nil, fmt.Errorf("zip archives are not supported yet: %s", ref.URL)
	default:
		return f.local.Fetch(ctx, ref)
	}
}
