package statsfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wortquiz/internal/domain"
)

// Store persists the statistics record as a single JSON document.
// Writes go through a temp file and a rename so the record is replaced
// atomically and a crash never leaves a half-written file behind.
type Store struct {
	path string
}

// New creates a file-backed stats store at the given path
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted record. A missing file yields a zeroed record;
// records written by older versions without the per-word map are defaulted.
func (s *Store) Load() (*domain.Stats, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.NewStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats file: %w", err)
	}
	stats.Normalize()
	return &stats, nil
}

// Save replaces the persisted record
func (s *Store) Save(stats *domain.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".stats-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp stats file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace stats file: %w", err)
	}
	return nil
}

// Clear removes the persisted record and returns a zeroed one
func (s *Store) Clear() (*domain.Stats, error) {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stats file: %w", err)
	}
	return domain.NewStats(), nil
}
