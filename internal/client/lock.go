package client

import (
	"fmt"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
)

const lockFileName = "memclip/memclip.lock"

// DefaultLockPath returns the per-user lock file under XDG_RUNTIME_DIR,
// creating its parent directory.
func DefaultLockPath() (string, error) {
	path, err := xdg.RuntimeFile(lockFileName)
	if err != nil {
		return "", fmt.Errorf("resolve lock file: %w", err)
	}
	return path, nil
}

// acquireLock takes a non-blocking exclusive lock on path.
func acquireLock(path string) (*flock.Flock, error) {
	lock := flock.New(path)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	return lock, nil
}
