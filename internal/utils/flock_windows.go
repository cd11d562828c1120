//go:build windows

package utils

import "os"

// Windows stub: advisory locking is not available via syscall.Flock.
// Exclusive creation (O_EXCL) still prevents two writers from racing on
// the same path.

func lockFile(f *os.File) error {
	return nil
}

func unlockFile(f *os.File) {
}
