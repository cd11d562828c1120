package utils

import (
	"fmt"
	"os"
)

// WriteExclusive writes data to path, creating the file exclusively and
// holding an advisory lock across the write. No cooperating process observes
// a partially written file: the path either does not exist or holds the full
// contents. The partial file is removed on any write failure.
func WriteExclusive(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	_, werr := f.Write(data)
	if werr == nil {
		werr = f.Sync()
	}

	unlockFile(f)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}

	if werr != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, werr)
	}

	return nil
}
