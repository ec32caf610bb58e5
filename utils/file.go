package utils

import (
	"os"
	"strings"
)

// IsIgnoreFile reports whether a directory entry should be left alone when
// scanning an output directory: directories, symlinks and dot files.
func IsIgnoreFile(info os.FileInfo) bool {
	if info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
		return true
	}
	return strings.HasPrefix(info.Name(), ".")
}
