// Package fetcher implements domain.CodebaseFetcher for local directories
// and remote git repositories.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ece-platform/appforge/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"vendor":       true,
	"coverage":     true,
}

// Content larger than this is indexed in Structure but not read.
const maxFileSize = 256 * 1024

var textExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".mjs": true, ".cjs": true,
	".json": true, ".md": true, ".yml": true, ".yaml": true, ".toml": true,
	".html": true, ".css": true, ".scss": true, ".svg": true,
	".env": true, ".txt": true, ".sql": true, ".prisma": true, ".sh": true,
}

// LocalFetcher builds snapshots by walking a directory tree.
type LocalFetcher struct{}

func NewLocal() *LocalFetcher {
	return &LocalFetcher{}
}

// Fetch treats ref.URL as a filesystem path.
func (f *LocalFetcher) Fetch(ctx context.Context, ref domain.CodebaseRef) (*domain.Snapshot, error) {
	return Walk(ctx, ref.URL)
}

// Walk reads a directory into a snapshot: file contents for known text
// types under the size cap, the full path listing, the parsed package.json,
// and the readme text.
func Walk(ctx context.Context, root string) (*domain.Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("codebase path: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("codebase path %s is not a directory", root)
	}

	snap := &domain.Snapshot{}

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absRoot, path)
		relPath = filepath.ToSlash(relPath)
		snap.Structure = append(snap.Structure, relPath)

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxFileSize || !readable(relPath) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		snap.Files = append(snap.Files, domain.SourceFile{
			Path:    relPath,
			Content: string(data),
			Size:    len(data),
		})

		switch {
		case relPath == "package.json":
			var manifest domain.PackageManifest
			if err := json.Unmarshal(data, &manifest); err == nil {
				snap.Manifest = &manifest
			}
		case strings.EqualFold(relPath, "readme.md"), strings.EqualFold(relPath, "readme"):
			snap.Readme = string(data)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func readable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if textExtensions[ext] {
		return true
	}
	// Dotfiles and extensionless configs (LICENSE, Dockerfile, .babelrc).
	base := filepath.Base(path)
	return ext == "" || strings.HasPrefix(base, ".")
}
