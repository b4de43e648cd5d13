package util

import (
	"os"
	"path/filepath"
	"vincit.fi/image-browser/common/logger"
)

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDirectoriesIfNotExist creates directory and every missing parent
// below root. root itself must exist.
func MakeDirectoriesIfNotExist(root string, directory string) error {
	if !DoesFileExist(root) {
		return os.ErrNotExist
	}
	if DoesFileExist(directory) {
		return nil
	}
	logger.Debug.Printf("Creating directory '%s'", directory)
	return os.MkdirAll(filepath.Clean(directory), 0755)
}
