package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/typeval"
)

const (
	// limitedAPISuffix is the shared-library suffix for stable-ABI modules;
	// one compiled artifact loads across CPython minor releases.
	limitedAPISuffix = ".abi3.so"

	// testBinSuffix is the suffix of compiled Zig test binaries.
	testBinSuffix = ".test.bin"
)

// ExtModule describes one Zig extension module declared in the manifest.
// Instances are created during Config construction and read-only afterwards.
type ExtModule struct {
	// Name is the fully-qualified dotted import path of the compiled
	// module, e.g. "pkg.fastmod".
	Name string

	// Root is the directory holding the module's Zig sources.
	Root Path

	// LimitedAPI selects the CPython stable-ABI build. The manifest
	// defaults it to true; the non-limited build is not implemented.
	LimitedAPI bool
}

// NewExtModule builds the description of a single extension module.
func NewExtModule(name string, root Path, limitedAPI bool) (*ExtModule, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: ext_module name must not be empty", ErrInvalidConfig)
	}
	return &ExtModule{Name: name, Root: root, LimitedAPI: limitedAPI}, nil
}

// LibName returns the final component of the dotted module name, which is
// the name the shared library is built under.
func (m *ExtModule) LibName() string {
	parts := strings.Split(m.Name, ".")
	return parts[len(parts)-1]
}

// InstallPath returns where the compiled artifact lands inside the Python
// package tree: the dotted name as nested directories, with the stable-ABI
// suffix appended. It does not depend on Root.
func (m *ExtModule) InstallPath() (Path, error) {
	if !m.LimitedAPI {
		return "", fmt.Errorf("module %s: %w", m.Name, ErrNonLimitedAPI)
	}
	return Path(filepath.Join(strings.Split(m.Name, ".")...) + limitedAPISuffix), nil
}

// TestBin returns the path of the module's compiled Zig test binary inside
// the zig-out build tree.
func (m *ExtModule) TestBin() Path {
	return Path(filepath.Join("zig-out", "bin", m.LibName()+testBinSuffix))
}

// extModuleFromTable extracts one ext_module entry from its untyped table.
// field names the entry in error messages, e.g. "ext_module[0]".
func extModuleFromTable(field string, tbl map[string]any) (*ExtModule, error) {
	if extra := unknownKeys(tbl, "name", "root", "limited_api"); len(extra) > 0 {
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, field, strings.Join(extra, ", "))
	}

	rawName, ok := tbl["name"]
	if !ok {
		return nil, fmt.Errorf("%w: %s is missing required key %q", ErrInvalidConfig, field, "name")
	}
	name, err := typeval.String(field+".name", rawName)
	if err != nil {
		return nil, err
	}

	rawRoot, ok := tbl["root"]
	if !ok {
		return nil, fmt.Errorf("%w: %s is missing required key %q", ErrInvalidConfig, field, "root")
	}
	root, err := typeval.String(field+".root", rawRoot)
	if err != nil {
		return nil, err
	}

	limitedAPI := true
	if raw, ok := tbl["limited_api"]; ok {
		if limitedAPI, err = typeval.Bool(field+".limited_api", raw); err != nil {
			return nil, err
		}
	}

	return NewExtModule(name, Path(root), limitedAPI)
}
