// Package history records past viability runs for trend reporting.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ece-platform/appforge/internal/domain"
)

const historyFile = "history/analyses.json"

// FileHistory implements an append-only analysis log using JSON file storage.
type FileHistory struct {
	dataDir string
}

func New(dataDir string) *FileHistory {
	return &FileHistory{dataDir: dataDir}
}

// Append records one analysis run.
func (h *FileHistory) Append(entry domain.AnalysisEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(h.dataDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fp, data, 0644)
}

// Load returns all recorded runs, oldest first.
func (h *FileHistory) Load() ([]domain.AnalysisEntry, error) {
	fp := filepath.Join(h.dataDir, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AnalysisEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ForURL filters the log to runs against a single codebase.
func (h *FileHistory) ForURL(url string) ([]domain.AnalysisEntry, error) {
	entries, err := h.Load()
	if err != nil {
		return nil, err
	}

	var filtered []domain.AnalysisEntry
	for _, e := range entries {
		if e.URL == url {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
