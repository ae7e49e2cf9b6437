package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

const lockFileName = "run.lock"

// RunLock prevents two forma processes from running plans in the same
// project. It does not serialize plans within one process; concurrent
// executors rely on the store's per-call merge updates.
type RunLock struct {
	path string
}

// NewRunLock creates a lock manager for the given project directory.
func NewRunLock(projectDir string) *RunLock {
	return &RunLock{path: filepath.Join(projectDir, lockFileName)}
}

// Acquire takes the lock, reclaiming it first if the holding process is
// gone. Returns an error while another live process holds it.
func (l *RunLock) Acquire() error {
	for attempt := 0; attempt < 2; attempt++ {
		err := l.create()
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}

		pid, readErr := l.holder()
		if readErr != nil {
			return readErr
		}
		if pid > 0 && processExists(pid) {
			return fmt.Errorf("a plan is already running in this project (PID %d)", pid)
		}

		// Holder is dead or the file is garbage: reclaim and try once more.
		if removeErr := os.Remove(l.path); removeErr != nil {
			return fmt.Errorf("failed to remove stale lock file: %w", removeErr)
		}
	}
	return fmt.Errorf("lock acquired by another process during retry")
}

// create attempts the atomic O_EXCL creation and writes the lock payload.
func (l *RunLock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	_, writeErr := fmt.Fprintf(f, "%d %s\n", os.Getpid(), time.Now().UTC().Format(time.RFC3339))
	closeErr := f.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(l.path)
		if writeErr != nil {
			return fmt.Errorf("failed to write lock file: %w", writeErr)
		}
		return fmt.Errorf("failed to close lock file: %w", closeErr)
	}
	return nil
}

// holder reads the PID recorded in the lock file. Returns 0 for an
// unparseable file, which callers treat as stale.
func (l *RunLock) holder() (int, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read existing lock file: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, nil
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil
	}
	return pid, nil
}

// Release removes the lock file. Releasing an absent lock is a no-op.
func (l *RunLock) Release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// processExists reports whether a process with the given PID is running.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 checks existence without sending a signal.
	return process.Signal(syscall.Signal(0)) == nil
}
