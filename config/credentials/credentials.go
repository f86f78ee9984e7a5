// Package credentials maintains OpenClaw's auth-profile store, the small
// JSON document next to the main config that holds API keys by profile name.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"clawmgr/config/storage"
)

// Version is the store schema version written by this tool.
const Version = 1

// Profile is one named credential entry.
type Profile struct {
	Type     string `json:"type"`
	Provider string `json:"provider"`
	Key      string `json:"key"`
}

// Store is the on-disk auth-profile document.
type Store struct {
	Version  int                `json:"version"`
	Profiles map[string]Profile `json:"profiles"`
}

// NewStore returns an empty store at the current schema version.
func NewStore() Store {
	return Store{Version: Version, Profiles: map[string]Profile{}}
}

// Load reads the store at path. The store is best-effort state owned by this
// tool, so failure to read it never aborts a run: a missing file yields an
// empty store, and an unparsable one is discarded and replaced. recovered
// reports whether existing content was thrown away, so callers can warn.
func Load(path string) (store Store, recovered bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewStore(), false
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return NewStore(), true
	}
	if s.Version == 0 {
		s.Version = Version
	}
	if s.Profiles == nil {
		s.Profiles = map[string]Profile{}
	}
	return s, false
}

// Upsert sets the named profile as an API-key credential, replacing any
// prior entry of the same name.
func (s *Store) Upsert(name, provider, key string) {
	if s.Profiles == nil {
		s.Profiles = map[string]Profile{}
	}
	s.Profiles[name] = Profile{Type: "api_key", Provider: provider, Key: key}
}

// Save writes the store with 0600 permissions, creating parent directories
// as needed.
func Save(path string, s Store) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode auth store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create auth store directory: %w", err)
	}
	if err := storage.WriteFileAtomic(path, append(data, '\n'), false); err != nil {
		return fmt.Errorf("write auth store: %w", err)
	}
	return nil
}
