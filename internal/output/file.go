package output

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	outputFilePermissions = 0o644
	lockFilePrefix        = "project-print-"
	lockFileSuffix        = ".lock"
	lockNameLength        = 16

	errorAbsoluteOutputFormat = "resolve output path %s: %w"
	errorLockFormat           = "failed to acquire lock on %s: %w"
	errorWriteFormat          = "write %s: %w"
)

// WriteDocument overwrites path with document. Concurrent runs targeting the
// same path are serialized through an advisory lock kept in the temporary
// directory, so the lock never shows up inside a printed project.
func WriteDocument(path string, document string) (err error) {
	absolutePath, absoluteError := filepath.Abs(path)
	if absoluteError != nil {
		return fmt.Errorf(errorAbsoluteOutputFormat, path, absoluteError)
	}

	fileLock := flock.New(lockPathFor(absolutePath))
	if lockError := fileLock.Lock(); lockError != nil {
		return fmt.Errorf(errorLockFormat, absolutePath, lockError)
	}
	defer func() {
		if unlockError := fileLock.Unlock(); unlockError != nil && err == nil {
			err = fmt.Errorf("failed to release lock on %s: %w", absolutePath, unlockError)
		}
	}()

	if writeError := os.WriteFile(absolutePath, []byte(document), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteFormat, absolutePath, writeError)
	}
	return nil
}

func lockPathFor(absolutePath string) string {
	digest := sha256.Sum256([]byte(absolutePath))
	name := lockFilePrefix + hex.EncodeToString(digest[:])[:lockNameLength] + lockFileSuffix
	return filepath.Join(os.TempDir(), name)
}
