package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store appends flat JSON records to files under a data directory. It backs
// the registration-request and admin-session records, which deliberately
// live outside the database.
type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Append reads the existing array in file, appends record and writes the
// whole array back. Missing files are treated as empty.
func (s *Store) Append(file string, record interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	var existing []json.RawMessage
	raw, err := os.ReadFile(s.path(file))
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &existing); err != nil {
			return fmt.Errorf("corrupt record file %s: %w", file, err)
		}
	case os.IsNotExist(err):
	default:
		return err
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}
	existing = append(existing, encoded)

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(file), out, 0o644)
}

// ReadAll decodes the full record array in file into out (a pointer to a
// slice). A missing file yields an empty result.
func (s *Store) ReadAll(file string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(file))
	if os.IsNotExist(err) {
		return json.Unmarshal([]byte("[]"), out)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
