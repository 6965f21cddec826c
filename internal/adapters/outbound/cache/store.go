// Package cache persists recent viability analyses so repeated runs against
// the same codebase can skip a full fetch.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ece-platform/appforge/internal/domain"
)

// DefaultTTL bounds how long a cached analysis is considered fresh.
const DefaultTTL = 15 * time.Minute

// Store is a file-based analysis cache keyed by codebase URL.
type Store struct {
	dataDir string
	ttl     time.Duration
	now     func() time.Time
}

func New(dataDir string) *Store {
	return &Store{dataDir: dataDir, ttl: DefaultTTL, now: time.Now}
}

// WithTTL overrides the freshness window.
func (s *Store) WithTTL(ttl time.Duration) *Store {
	s.ttl = ttl
	return s
}

type entry struct {
	URL        string                  `json:"url"`
	Result     *domain.ViabilityResult `json:"result"`
	AnalyzedAt time.Time               `json:"analyzedAt"`
}

// Load reads a cached analysis for url. Returns (nil, nil) when no fresh
// entry exists; a missing or stale cache is not an error.
func (s *Store) Load(url string) (*domain.ViabilityResult, error) {
	data, err := os.ReadFile(s.path(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if e.URL != url || s.now().Sub(e.AnalyzedAt) > s.ttl {
		return nil, nil
	}
	return e.Result, nil
}

// Save writes the analysis for url, creating directories as needed.
func (s *Store) Save(url string, result *domain.ViabilityResult) error {
	if err := os.MkdirAll(filepath.Join(s.dataDir, "cache"), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry{URL: url, Result: result, AnalyzedAt: s.now()}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(url), data, 0644)
}

// Invalidate removes the cache entry for url.
func (s *Store) Invalidate(url string) error {
	if err := os.Remove(s.path(url)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(s.dataDir, "cache", hex.EncodeToString(sum[:8])+".json")
}
