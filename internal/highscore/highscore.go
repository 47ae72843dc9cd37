// Package highscore persists the best score of a runner variant.
// Every store treats missing data as a high score of zero.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the persistence boundary of a session.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// record is the on-disk form.
type record struct {
	HighScore int `json:"high_score"`
}

func decode(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, err
	}
	if r.HighScore < 0 {
		return 0, nil
	}
	return r.HighScore, nil
}

func encode(score int) ([]byte, error) {
	return json.Marshal(record{HighScore: score})
}

// FileStore keeps the high score in a JSON file: {"high_score": N}.
type FileStore struct {
	path string
}

// NewFileStore creates a store for path. A leading ~ expands to the home directory.
func NewFileStore(path string) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the high score. A missing file is zero without error; an
// unreadable or malformed file is zero with an error for the caller to log.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	score, err := decode(data)
	if err != nil {
		return 0, fmt.Errorf("highscore: malformed %s: %w", s.path, err)
	}
	return score, nil
}

// Save overwrites the file with score.
func (s *FileStore) Save(score int) error {
	data, err := encode(score)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Memory keeps the high score in memory only.
type Memory struct {
	Score int
}

func (m *Memory) Load() (int, error) { return m.Score, nil }

func (m *Memory) Save(score int) error {
	m.Score = score
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
