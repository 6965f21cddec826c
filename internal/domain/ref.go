package domain

import "strings"

// SourceKind classifies where a codebase lives.
type SourceKind string

const (
	SourceGitHub    SourceKind = "github"
	SourceGitLab    SourceKind = "gitlab"
	SourceBitbucket SourceKind = "bitbucket"
	SourceZip       SourceKind = "zip"
	SourceOther     SourceKind = "other"
)

// CodebaseRef identifies a codebase to fetch for analysis.
type CodebaseRef struct {
	URL         string     `json:"url"`
	Kind        SourceKind `json:"type"`
	Branch      string     `json:"branch,omitempty"`
	AccessToken string     `json:"-"`
}

// RefOption overrides defaults resolved by ClassifyCodebase.
type RefOption func(*CodebaseRef)

func WithBranch(branch string) RefOption {
	return func(r *CodebaseRef) {
		if branch != "" {
			r.Branch = branch
		}
	}
}

func WithAccessToken(token string) RefOption {
	return func(r *CodebaseRef) { r.AccessToken = token }
}

// ClassifyCodebase resolves a raw URL into a typed reference. Git hosts
// default to the "main" branch; zip archives and unknown locations carry no
// branch at all.
func ClassifyCodebase(url string, opts ...RefOption) CodebaseRef {
	ref := CodebaseRef{URL: url, Kind: SourceOther}
	switch {
	case strings.Contains(url, "github.com"):
		ref.Kind = SourceGitHub
		ref.Branch = "main"
	case strings.Contains(url, "gitlab.com"):
		ref.Kind = SourceGitLab
		ref.Branch = "main"
	case strings.Contains(url, "bitbucket.org"):
		ref.Kind = SourceBitbucket
		ref.Branch = "main"
	case strings.HasSuffix(url, ".zip"):
		ref.Kind = SourceZip
	}
	for _, opt := range opts {
		opt(&ref)
	}
	return ref
}

// IsGitHost reports whether the reference points at a clonable git remote.
func (r CodebaseRef) IsGitHost() bool {
	switch r.Kind {
	case SourceGitHub, SourceGitLab, SourceBitbucket:
		return true
	}
	return false
}
