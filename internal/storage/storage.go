// Package storage persists rendered pamphlets on the local filesystem.
// Filenames combine the sanitized product name with a random token, so
// concurrent requests never collide and no locking is needed.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned for a download of a missing or invalid filename.
var ErrNotFound = errors.New("pamphlet not found")

// Store writes and resolves pamphlet files under a single directory.
type Store struct {
	dir string
}

// NewStore ensures the output directory exists and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string { return s.dir }

// Save writes data to a fresh uniquely named PNG and returns the filename.
// The data is complete before the write starts, so a crash never leaves a
// partially rendered pamphlet behind a valid name.
func (s *Store) Save(productName string, data []byte) (string, error) {
	name := fmt.Sprintf("pamphlet_%s_%s.png", SanitizeName(productName), uuid.NewString()[:8])
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write pamphlet %s: %w", name, err)
	}
	return name, nil
}

// Path resolves a previously returned filename, rejecting anything that
// escapes the output directory.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// SanitizeName lowercases a product name and keeps only letters, digits and
// underscores.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "pamphlet"
	}
	return b.String()
}
