package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles persistence of raw page snapshots.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir, creating the
// directory if needed.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// sourcePath returns the snapshot path for one team and season.
func (s *Storage) sourcePath(team string, year int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("source_%s_%d.html", strings.ToUpper(team), year))
}

// SaveSource writes raw markup for a team/season snapshot.
func (s *Storage) SaveSource(team string, year int, markup []byte) error {
	if err := os.WriteFile(s.sourcePath(team, year), markup, 0644); err != nil {
		return fmt.Errorf("writing source snapshot: %w", err)
	}
	return nil
}

// LoadSource reads a previously saved snapshot. The boolean result reports
// whether a snapshot existed.
func (s *Storage) LoadSource(team string, year int) ([]byte, bool, error) {
	markup, err := os.ReadFile(s.sourcePath(team, year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading source snapshot: %w", err)
	}
	return markup, true, nil
}
