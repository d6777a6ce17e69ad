// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"os"
	"path/filepath"
)

// MarkerFileName is the project marker file whose presence defines the
// project root and may carry a requested runtime version.
const MarkerFileName = "global.json"

// ResolveRootDirectory walks upward from startDir and returns the nearest
// ancestor (startDir included) that contains the marker file. When no
// ancestor has one, the cleaned startDir is returned unchanged; the walk
// is bounded by the filesystem root, so this never fails.
func ResolveRootDirectory(startDir string) string {
	start := filepath.Clean(startDir)
	for dir := start; ; {
		if fileExists(filepath.Join(dir, MarkerFileName)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
