package config

import (
	"path/filepath"
	"testing"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/typeval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibName(t *testing.T) {
	testCases := []struct {
		name     string
		modName  string
		expected string
	}{
		{name: "nested package path", modName: "pkg.fastmod", expected: "fastmod"},
		{name: "deeply nested path", modName: "a.b.c", expected: "c"},
		{name: "top-level module keeps its name", modName: "fastmod", expected: "fastmod"},
		{name: "private module", modName: "example._lib", expected: "_lib"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mod, err := NewExtModule(tc.modName, "src", true)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mod.LibName())
		})
	}
}

func TestInstallPath(t *testing.T) {
	mod, err := NewExtModule("pkg.fastmod", "src/fastmod", true)
	require.NoError(t, err)

	got, err := mod.InstallPath()
	require.NoError(t, err)
	assert.Equal(t, Path(filepath.Join("pkg", "fastmod")+".abi3.so"), got)
}

func TestInstallPathIgnoresRoot(t *testing.T) {
	a, err := NewExtModule("pkg.fastmod", "src/a", true)
	require.NoError(t, err)
	b, err := NewExtModule("pkg.fastmod", "completely/other/root", true)
	require.NoError(t, err)

	pathA, err := a.InstallPath()
	require.NoError(t, err)
	pathB, err := b.InstallPath()
	require.NoError(t, err)
	assert.Equal(t, pathA, pathB)
}

func TestInstallPathNonLimitedAPI(t *testing.T) {
	testCases := []struct {
		name    string
		modName string
		root    Path
	}{
		{name: "nested module", modName: "pkg.fastmod", root: "src"},
		{name: "top-level module", modName: "fastmod", root: "elsewhere"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mod, err := NewExtModule(tc.modName, tc.root, false)
			require.NoError(t, err)

			_, err = mod.InstallPath()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonLimitedAPI)
		})
	}
}

func TestTestBin(t *testing.T) {
	mod, err := NewExtModule("pkg.fastmod", "src/fastmod", true)
	require.NoError(t, err)

	assert.Equal(t, Path(filepath.Join("zig-out", "bin", "fastmod.test.bin")), mod.TestBin())
}

func TestNewExtModuleEmptyName(t *testing.T) {
	_, err := NewExtModule("", "src", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestExtModuleFromTable(t *testing.T) {
	testCases := []struct {
		name        string
		tbl         map[string]any
		expectField string // non-empty: a typeval error naming this field
		expectErr   string // non-empty: an ErrInvalidConfig containing this text
		check       func(t *testing.T, mod *ExtModule)
	}{
		{
			name: "limited_api defaults to true",
			tbl:  map[string]any{"name": "pkg.fastmod", "root": "src/fastmod"},
			check: func(t *testing.T, mod *ExtModule) {
				assert.True(t, mod.LimitedAPI)
				assert.Equal(t, Path("src/fastmod"), mod.Root)
			},
		},
		{
			name: "explicit limited_api false",
			tbl:  map[string]any{"name": "pkg.slowmod", "root": "src", "limited_api": false},
			check: func(t *testing.T, mod *ExtModule) {
				assert.False(t, mod.LimitedAPI)
			},
		},
		{
			name:      "missing name",
			tbl:       map[string]any{"root": "src"},
			expectErr: "name",
		},
		{
			name:      "missing root",
			tbl:       map[string]any{"name": "pkg.fastmod"},
			expectErr: "root",
		},
		{
			name:        "name must be textual",
			tbl:         map[string]any{"name": int64(7), "root": "src"},
			expectField: "ext_module[0].name",
		},
		{
			name:        "root must be textual",
			tbl:         map[string]any{"name": "pkg.fastmod", "root": true},
			expectField: "ext_module[0].root",
		},
		{
			name:        "limited_api must be boolean",
			tbl:         map[string]any{"name": "pkg.fastmod", "root": "src", "limited_api": "yes"},
			expectField: "ext_module[0].limited_api",
		},
		{
			name:      "unknown key is rejected",
			tbl:       map[string]any{"name": "pkg.fastmod", "root": "src", "limited": true},
			expectErr: "limited",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mod, err := extModuleFromTable("ext_module[0]", tc.tbl)

			switch {
			case tc.expectField != "":
				require.Error(t, err)
				var verr *typeval.Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.expectField, verr.Field)
			case tc.expectErr != "":
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tc.expectErr)
			default:
				require.NoError(t, err)
				require.NotNil(t, mod)
				tc.check(t, mod)
			}
		})
	}
}
