package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/typeval"
)

// defaultBuildZig is the conventional build descriptor filename.
const defaultBuildZig = "build.zig"

// Config models the tool.pydust table of pyproject.toml. It is constructed
// once per process by Load and read-only afterwards.
type Config struct {
	// ZigExe overrides the zig executable used for builds. Nil means the
	// bundled toolchain resolution applies.
	ZigExe *Path

	// BuildZig is the project's build descriptor, "build.zig" by default.
	BuildZig Path

	// ZigTests controls whether Zig tests join the pytest collection.
	// The manifest defaults it to true.
	ZigTests bool

	// SelfManaged means the user maintains their own build.zig instead of
	// having one generated from ExtModules.
	SelfManaged bool

	// ExtModules lists the declared extension modules in manifest order.
	// The order is load-bearing: generated build files follow it.
	ExtModules []*ExtModule
}

// New validates and normalizes a Config. An empty BuildZig falls back to
// the conventional filename and a nil module list becomes an empty one.
// Declaring ext_module entries in self-managed mode is rejected: the two
// settings represent opposite ownership of the build descriptor.
func New(cfg Config) (*Config, error) {
	if cfg.BuildZig == "" {
		cfg.BuildZig = defaultBuildZig
	}
	if cfg.ExtModules == nil {
		cfg.ExtModules = []*ExtModule{}
	}
	if cfg.SelfManaged && len(cfg.ExtModules) > 0 {
		return nil, fmt.Errorf("%w: ext_module cannot be defined when pydust is in self-managed mode", ErrInvalidConfig)
	}
	return &cfg, nil
}

// PydustBuildZig returns the companion build file pydust maintains next to
// the user's build descriptor.
func (c *Config) PydustBuildZig() Path {
	return c.BuildZig.Dir().Join("pydust.build.zig")
}

// fromTable builds a Config from the untyped tool.pydust table. Every field
// is looked up and shape-checked explicitly so mistakes are reported against
// the manifest key that carries them. The manifest uses the singular key
// ext_module for the module list; it reads better in TOML.
func fromTable(tbl map[string]any) (*Config, error) {
	if extra := unknownKeys(tbl, "zig_exe", "build_zig", "zig_tests", "self_managed", "ext_module"); len(extra) > 0 {
		return nil, fmt.Errorf("%w: unknown keys in tool.pydust: %s", ErrInvalidConfig, strings.Join(extra, ", "))
	}

	cfg := Config{BuildZig: defaultBuildZig, ZigTests: true}

	if raw, ok := tbl["zig_exe"]; ok {
		s, err := typeval.String("zig_exe", raw)
		if err != nil {
			return nil, err
		}
		exe := Path(s)
		cfg.ZigExe = &exe
	}

	if raw, ok := tbl["build_zig"]; ok {
		s, err := typeval.String("build_zig", raw)
		if err != nil {
			return nil, err
		}
		cfg.BuildZig = Path(s)
	}

	if raw, ok := tbl["zig_tests"]; ok {
		b, err := typeval.Bool("zig_tests", raw)
		if err != nil {
			return nil, err
		}
		cfg.ZigTests = b
	}

	if raw, ok := tbl["self_managed"]; ok {
		b, err := typeval.Bool("self_managed", raw)
		if err != nil {
			return nil, err
		}
		cfg.SelfManaged = b
	}

	if raw, ok := tbl["ext_module"]; ok {
		seq, err := typeval.Sequence("ext_module", raw)
		if err != nil {
			return nil, err
		}
		cfg.ExtModules = make([]*ExtModule, 0, len(seq))
		for i, el := range seq {
			entry := fmt.Sprintf("ext_module[%d]", i)
			etbl, err := typeval.Table(entry, el)
			if err != nil {
				return nil, err
			}
			mod, err := extModuleFromTable(entry, etbl)
			if err != nil {
				return nil, err
			}
			cfg.ExtModules = append(cfg.ExtModules, mod)
		}
	}

	return New(cfg)
}

// unknownKeys returns the keys of tbl that are not in known, sorted.
func unknownKeys(tbl map[string]any, known ...string) []string {
	var extra []string
	for key := range tbl {
		if !slices.Contains(known, key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return extra
}
