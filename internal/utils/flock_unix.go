//go:build unix

package utils

import (
	"fmt"
	"os"
	"syscall"
)

// lockFile acquires an exclusive advisory lock on the open file (blocking).
func lockFile(f *os.File) error {
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock on %s: %w", f.Name(), err)
	}
	return nil
}

// unlockFile releases the advisory lock.
func unlockFile(f *os.File) {
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
