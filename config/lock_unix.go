//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package config

import (
	"os"

	"golang.org/x/sys/unix"
)

// Advisory flock keeps concurrent runs from interleaving reads with a
// half-finished write. Locks are released when the descriptor closes, so a
// crashed run never wedges the file. Writes need no exclusive lock: the
// atomic rename in storage swaps the document in one step.

func lockShared(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_SH)
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
