package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"clawmgr/config/storage"
	"clawmgr/internal/errs"
)

// Store reads and writes one JSON document on disk. Reads take a shared
// advisory lock; writes go through a backup plus atomic rename, with the
// previous content restored if the write fails halfway.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document's location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the raw document. The file must already exist: this tool
// only ever edits a config the gateway wrote first.
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &errs.PreconditionError{
				Msg: fmt.Sprintf("no gateway config at %s (run openclaw once so it creates one)", s.path),
			}
		}
		return "", fmt.Errorf("open gateway config: %w", err)
	}
	defer f.Close()

	if err := lockShared(f); err != nil {
		return "", fmt.Errorf("lock gateway config: %w", err)
	}
	defer unlock(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read gateway config: %w", err)
	}
	return string(data), nil
}

// Save writes content back, keeping a timestamped backup of the previous
// version. A failed write rolls back to the most recent backup so the
// gateway never starts against a torn document.
func (s *Store) Save(content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := storage.WriteFileAtomic(s.path, []byte(content), true); err != nil {
		bm := storage.NewBackupManager(storage.DefaultRetention)
		if rerr := bm.RestoreLatest(s.path); rerr != nil {
			return fmt.Errorf("write gateway config: %w (restore also failed: %v)", err, rerr)
		}
		return fmt.Errorf("write gateway config (previous version restored): %w", err)
	}
	return nil
}
