// Package fsutil provides small file system helpers for project inspection.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Zig build artifacts that never hold project sources.
var skippedDirs = map[string]bool{
	"zig-cache":  true,
	".zig-cache": true,
	"zig-out":    true,
}

// ZigSources recursively collects all Zig source files under root, skipping
// build caches and output directories.
func ZigSources(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".zig") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
