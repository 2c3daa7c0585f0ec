// Package filelock provides advisory file locking so that concurrent archive
// runs writing into the same archive directory take turns.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// FileLock is an exclusive advisory lock held on a lock file.
// The file is created on first use and left in place afterwards.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock returns an unlocked FileLock on path.
func NewFileLock(path string) *FileLock {
	return &FileLock{flock: flock.New(path), path: path}
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock blocks until the lock is held.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", fl.path, err)
	}
	return nil
}

// TryLock takes the lock if it is free and reports whether it did.
func (fl *FileLock) TryLock() (bool, error) {
	ok, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("try lock %s: %w", fl.path, err)
	}
	return ok, nil
}

// LockOrWait tries the lock first and, when another holder has it, calls
// onBusy (if non-nil) once before blocking until the lock is released.
func (fl *FileLock) LockOrWait(onBusy func()) error {
	ok, err := fl.TryLock()
	if err != nil || ok {
		return err
	}

	if onBusy != nil {
		onBusy()
	}
	return fl.Lock()
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("unlock %s: %w", fl.path, err)
	}
	return nil
}
