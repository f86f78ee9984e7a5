package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultRetention is how many backups of one file are kept.
const DefaultRetention = 3

// BackupManager keeps timestamped copies of a file next to it, named
// <file>.backup-<YYYYMMDDHHMMSS>-<pid>. The PID suffix keeps concurrent
// runs from clobbering each other's copies.
type BackupManager struct {
	Retention int
}

// NewBackupManager returns a manager retaining the given number of backups
// per file, or DefaultRetention if the count is not positive.
func NewBackupManager(retention int) *BackupManager {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &BackupManager{Retention: retention}
}

// Create copies path to a fresh backup file and returns the backup's path.
func (bm *BackupManager) Create(path string) (string, error) {
	timestamp := time.Now().Format("20060102150405")
	backupPath := fmt.Sprintf("%s.backup-%s-%d", path, timestamp, os.Getpid())

	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("copy to backup: %w", err)
	}
	return backupPath, nil
}

// List returns the backups of path, oldest first.
func (bm *BackupManager) List(path string) ([]string, error) {
	backups, err := filepath.Glob(path + ".backup-*")
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}

	sort.Slice(backups, func(i, j int) bool {
		iInfo, err1 := os.Stat(backups[i])
		jInfo, err2 := os.Stat(backups[j])
		if err1 != nil || err2 != nil {
			return false
		}
		return iInfo.ModTime().Before(jInfo.ModTime())
	})
	return backups, nil
}

// TrimOld deletes backups of path beyond the retention count, oldest first.
func (bm *BackupManager) TrimOld(path string) error {
	backups, err := bm.List(path)
	if err != nil {
		return err
	}

	excess := len(backups) - bm.Retention
	if excess <= 0 {
		return nil
	}
	for _, old := range backups[:excess] {
		if err := os.Remove(old); err != nil {
			return fmt.Errorf("remove old backup %s: %w", old, err)
		}
	}
	return nil
}

// RestoreLatest copies the most recent backup of path back over it.
func (bm *BackupManager) RestoreLatest(path string) error {
	backups, err := bm.List(path)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found for %s", path)
	}
	if err := copyFile(backups[len(backups)-1], path); err != nil {
		return fmt.Errorf("restore from backup: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode())
}
