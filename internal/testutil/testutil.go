// Package testutil scaffolds throwaway pydust projects for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/config"
	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/pyproject"
	"github.com/stretchr/testify/require"
)

// Project creates a temporary project directory holding the given
// pyproject.toml, makes it the working directory for the duration of the
// test, and resets the process-wide config cache around it. It returns the
// directory so callers can add more files next to the manifest.
func Project(t *testing.T, manifest string) string {
	t.Helper()

	dir := t.TempDir()
	WriteManifest(t, dir, manifest)
	Chdir(t, dir)

	config.Reset()
	t.Cleanup(config.Reset)
	return dir
}

// Chdir makes dir the working directory for the duration of the test and
// restores the previous one during cleanup. It stands in for
// testing.T.Chdir, which needs Go 1.24.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

// WriteManifest writes (or rewrites) the pyproject.toml inside dir.
func WriteManifest(t *testing.T, dir, manifest string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, pyproject.Filename), []byte(manifest), 0o644))
}

// WriteFile writes an arbitrary project file relative to dir, creating
// parent directories as needed.
func WriteFile(t *testing.T, dir, rel, contents string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
