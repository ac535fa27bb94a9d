package fileutil

import "os"

// AtomicWriteFile writes content to a temporary file next to filePath and
// renames it into place. The file is created with mode 0600.
func AtomicWriteFile(filePath string, content []byte) error {
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
