package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents and returns its absolute
// path. An existing directory is not an error.
func EnsureDir(dir string) (string, error) {
	fp, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(fp)
	if err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("%s: not a directory", fp)
		}
		return fp, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	if err := os.MkdirAll(fp, 0o755); err != nil {
		return "", err
	}
	return fp, nil
}
