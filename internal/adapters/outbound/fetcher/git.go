package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/ece-platform/appforge/internal/domain"
)

// GitFetcher shallow-clones a remote repository into a temp directory and
// snapshots the working tree.
type GitFetcher struct {
	log *slog.Logger
}

func NewGit(log *slog.Logger) *GitFetcher {
	if log == nil {
		log = slog.Default()
	}
	return &GitFetcher{log: log}
}

func (f *GitFetcher) Fetch(ctx context.Context, ref domain.CodebaseRef) (*domain.Snapshot, error) {
	dir, err := os.MkdirTemp("", "appforge-clone-*")
	if err != nil {
		return nil, fmt.Errorf("creating clone dir: %w", err)
	}
	defer os.RemoveAll(dir)

	opts := &git.CloneOptions{
		URL:          ref.URL,
		Depth:        1,
		SingleBranch: true,
	}
	if ref.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref.Branch)
	}
	if ref.AccessToken != "" {
		// Token auth works for GitHub, GitLab, and Bitbucket over HTTPS.
		opts.Auth = &githttp.BasicAuth{Username: "token", Password: ref.AccessToken}
	}

	f.log.Debug("cloning codebase", "url", ref.URL, "branch", ref.Branch)
	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		return nil, fmt.Errorf("cloning %s: %w", ref.URL, err)
	}

	return Walk(ctx, dir)
}
