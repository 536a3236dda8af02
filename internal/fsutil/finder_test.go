package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/fastmod/fastmod.zig")
	writeFile(t, dir, "src/fastmod/sub/helpers.zig")
	writeFile(t, dir, "src/fastmod/README.md")
	writeFile(t, dir, "zig-cache/o/1f3a/generated.zig")
	writeFile(t, dir, "zig-out/bin/fastmod.test.bin")

	files, err := ZigSources(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "src", "fastmod", "fastmod.zig"),
		filepath.Join(dir, "src", "fastmod", "sub", "helpers.zig"),
	}
	assert.ElementsMatch(t, expected, files)
}

func TestZigSourcesMissingRoot(t *testing.T) {
	_, err := ZigSources(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(filepath.Join(dir, "absent")))

	writeFile(t, dir, "file.zig")
	assert.False(t, DirExists(filepath.Join(dir, "file.zig")))
}

func writeFile(t *testing.T, dir, rel string) {
	t.Helper()

	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}
