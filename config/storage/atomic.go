// Package storage handles the file hygiene around the gateway's JSON
// documents: atomic writes, timestamped backups and restore.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// WriteFileAtomic replaces path with data via a temp file in the same
// directory and a rename, so readers never observe a partial document. The
// file ends up with 0600 permissions. With withBackup set, a timestamped
// copy of the previous content is kept first and old copies are trimmed
// after a successful write.
func WriteFileAtomic(path string, data []byte, withBackup bool) error {
	bm := NewBackupManager(DefaultRetention)
	if withBackup && FileExists(path) {
		if _, err := bm.Create(path); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("set temp file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	if withBackup {
		// Trim failures leave extra backups behind, nothing worse.
		_ = bm.TrimOld(path)
	}
	return nil
}
