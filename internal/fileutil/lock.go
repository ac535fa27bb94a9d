package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	lockRetries = 5
	lockStale   = 10 * time.Second
)

// ErrLocked is returned when another process holds the lock on a file.
var ErrLocked = errors.New("file is locked by another process")

// AcquireLock creates filePath+".lock" exclusively. It retries up to
// maxRetries times with exponential backoff and removes a lock file older
// than 10 seconds.
func AcquireLock(filePath string, maxRetries int) error {
	lockPath := filePath + ".lock"

	for attempt := 0; ; attempt++ {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f.Close()
		}
		if !os.IsExist(err) {
			return fmt.Errorf("lock %s: %w", filePath, err)
		}

		if info, statErr := os.Stat(lockPath); statErr == nil && time.Since(info.ModTime()) > lockStale {
			_ = os.Remove(lockPath)
			continue
		}
		if attempt >= maxRetries {
			return fmt.Errorf("lock %s: %w", filePath, ErrLocked)
		}
		time.Sleep(time.Duration(1<<uint(attempt)) * time.Millisecond)
	}
}

// ReleaseLock removes the lock file. Errors are ignored.
func ReleaseLock(filePath string) {
	_ = os.Remove(filePath + ".lock")
}

// WithFileLock runs fn while holding the lock on filePath.
func WithFileLock(filePath string, fn func() error) error {
	if err := AcquireLock(filePath, lockRetries); err != nil {
		return err
	}
	defer ReleaseLock(filePath)
	return fn()
}
