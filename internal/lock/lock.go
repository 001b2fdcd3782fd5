// Package lock guards an output directory against concurrent design runs.
package lock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// RunLock serializes design runs writing to one output directory. Held via
// flock on a file in the system temp dir, keyed by the directory's absolute
// path, so the output tree itself stays clean.
type RunLock struct {
	path string
	file *os.File
}

func New(path string) *RunLock {
	return &RunLock{path: path}
}

// ForOutputDir returns the lock guarding dir.
func ForOutputDir(dir string) (*RunLock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	sum := sha256.Sum256([]byte(abs))
	name := fmt.Sprintf("blueprint-%x.lock", sum[:8])
	return New(filepath.Join(os.TempDir(), name)), nil
}

// TryLock acquires the lock without blocking and records the holder's PID
// in the lock file.
func (l *RunLock) TryLock() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		return fmt.Errorf("acquire lock (another design run may be writing here): %w", err)
	}

	if err := f.Truncate(0); err != nil {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
		return fmt.Errorf("truncate lock file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
		return fmt.Errorf("seek lock file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
		return fmt.Errorf("write PID to lock file: %w", err)
	}
	if err := f.Sync(); err != nil {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
		return fmt.Errorf("sync lock file: %w", err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock and removes the lock file. Safe to call when the
// lock is not held.
func (l *RunLock) Unlock() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		l.file.Close()
		return fmt.Errorf("release lock: %w", err)
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close lock file: %w", err)
	}

	os.Remove(l.path)
	l.file = nil
	return nil
}
