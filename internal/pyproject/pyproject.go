// Package pyproject reads the project manifest that configures pydust.
package pyproject

import (
	"fmt"
	"os"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/typeval"
	"github.com/pelletier/go-toml/v2"
)

// Filename is the conventional manifest location, relative to the working
// directory the build runs in.
const Filename = "pyproject.toml"

// Pyproject is the subset of the manifest pydust consumes. Tool tables stay
// untyped here; the config package extracts and validates tool.pydust field
// by field.
type Pyproject struct {
	Project     Project        `toml:"project"`
	BuildSystem BuildSystem    `toml:"build-system"`
	Tool        map[string]any `toml:"tool"`
}

// Project mirrors the standard [project] table. Parsed for display only.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// BuildSystem mirrors the [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Load reads and parses the manifest at path. A missing or unparseable
// manifest is terminal for the build.
func Load(path string) (*Pyproject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Pyproject
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// Requires returns the build-system requirement strings in declaration order.
func (p *Pyproject) Requires() []string {
	return p.BuildSystem.Requires
}

// PydustTable extracts the tool.pydust table. A manifest without one yields
// an empty table; a tool.pydust entry that is not a table is a shape error.
func (p *Pyproject) PydustTable() (map[string]any, error) {
	raw, ok := p.Tool["pydust"]
	if !ok {
		return map[string]any{}, nil
	}
	return typeval.Table("tool.pydust", raw)
}
