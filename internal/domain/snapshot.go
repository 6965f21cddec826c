package domain

import "strings"

// Snapshot is the fetched content of a codebase. All scoring passes are pure
// functions over this value, independent of how it was obtained.
type Snapshot struct {
	Files    []SourceFile     `json:"files"`
	Manifest *PackageManifest `json:"packageJson,omitempty"`
	Readme   string           `json:"readme,omitempty"`
	// Structure lists every relative path in the codebase, including paths
	// whose content was not read (binaries, oversized files).
	Structure []string `json:"structure"`
}

type SourceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Size    int    `json:"size"`
}

// PackageManifest is a parsed package.json.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// AllDependencies merges runtime and dev dependencies. Runtime entries win on
// conflict.
func (m *PackageManifest) AllDependencies() map[string]string {
	if m == nil {
		return map[string]string{}
	}
	merged := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies))
	for name, version := range m.DevDependencies {
		merged[name] = version
	}
	for name, version := range m.Dependencies {
		merged[name] = version
	}
	return merged
}

// HasFile reports whether a file with the exact relative path exists.
func (s *Snapshot) HasFile(path string) bool {
	for _, f := range s.Files {
		if f.Path == path {
			return true
		}
	}
	return false
}

// HasFileMatching reports whether any file path contains the given fragment,
// case-insensitively.
func (s *Snapshot) HasFileMatching(fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, f := range s.Files {
		if strings.Contains(strings.ToLower(f.Path), fragment) {
			return true
		}
	}
	return false
}

// HasPathMatching reports whether any structure entry contains one of the
// given fragments.
func (s *Snapshot) HasPathMatching(fragments ...string) bool {
	for _, entry := range s.Structure {
		for _, fragment := range fragments {
			if strings.Contains(entry, fragment) {
				return true
			}
		}
	}
	return false
}

// JoinedContent concatenates all file contents. Security scanning works on
// the combined text the same way it would on individual files.
func (s *Snapshot) JoinedContent() string {
	var b strings.Builder
	for _, f := range s.Files {
		b.WriteString(f.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
