package pyproject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/typeval"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
[project]
name = "example"
version = "0.3.0"

[build-system]
requires = ["ziggy-pydust==1.2.3", "poetry-core"]
build-backend = "poetry.core.masonry.api"

[tool.pydust]
self_managed = false

[[tool.pydust.ext_module]]
name = "example._lib"
root = "src/"
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "example", p.Project.Name)
	assert.Equal(t, "0.3.0", p.Project.Version)
	assert.Equal(t, []string{"ziggy-pydust==1.2.3", "poetry-core"}, p.Requires())
	assert.Equal(t, "poetry.core.masonry.api", p.BuildSystem.BuildBackend)

	tbl, err := p.PydustTable()
	require.NoError(t, err)
	assert.Equal(t, false, tbl["self_managed"])

	mods, ok := tbl["ext_module"].([]any)
	require.True(t, ok, "ext_module should decode as an untyped sequence")
	require.Len(t, mods, 1)
	first, ok := mods[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "example._lib", first["name"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), Filename))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := writeManifest(t, "[build-system\nrequires = [")

	_, err := Load(path)
	require.Error(t, err)
	var derr *toml.DecodeError
	assert.ErrorAs(t, err, &derr)
}

func TestPydustTableAbsent(t *testing.T) {
	path := writeManifest(t, `
[build-system]
requires = ["setuptools"]
`)

	p, err := Load(path)
	require.NoError(t, err)

	tbl, err := p.PydustTable()
	require.NoError(t, err)
	assert.Empty(t, tbl)
}

func TestPydustTableWrongShape(t *testing.T) {
	path := writeManifest(t, `
[tool]
pydust = "not a table"
`)

	p, err := Load(path)
	require.NoError(t, err)

	_, err = p.PydustTable()
	require.Error(t, err)
	var verr *typeval.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tool.pydust", verr.Field)
}
