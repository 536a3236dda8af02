package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/ctxlog"
	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/pyproject"
	"github.com/Sachaa-Thanasius/ziggy-pydust/internal/version"
)

// distName is the name this tool is published under; build-system.requires
// entries are matched against it.
const distName = "ziggy-pydust"

var (
	loadMu         sync.Mutex
	loaded         *Config
	loadedManifest *pyproject.Pyproject
)

// Load returns the project configuration, reading pyproject.toml from the
// working directory on first use. The result is cached for the lifetime of
// the process: later calls return the same *Config without touching the
// manifest again, even if the file has changed. A failed load is not
// cached, so the next call retries from scratch. Safe for concurrent use.
func Load(ctx context.Context) (*Config, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if err := ensure(ctx); err != nil {
		return nil, err
	}
	return loaded, nil
}

// Manifest returns the parsed pyproject.toml backing the cached
// configuration, loading it on first use. Callers that display manifest
// fields next to the configuration read the same parse the loader
// validated, never a second read that could disagree with it.
func Manifest(ctx context.Context) (*pyproject.Pyproject, error) {
	loadMu.Lock()
	defer loadMu.Unlock()

	if err := ensure(ctx); err != nil {
		return nil, err
	}
	return loadedManifest, nil
}

// Reset clears the cache so the next Load re-reads the manifest. Only
// tests need this.
func Reset() {
	loadMu.Lock()
	loaded, loadedManifest = nil, nil
	loadMu.Unlock()
}

// ensure populates the cache on first use. Callers must hold loadMu.
func ensure(ctx context.Context) error {
	if loaded != nil {
		return nil
	}

	cfg, manifest, err := load(ctx)
	if err != nil {
		return err
	}
	loaded, loadedManifest = cfg, manifest
	return nil
}

func load(ctx context.Context) (*Config, *pyproject.Pyproject, error) {
	logger := ctxlog.FromContext(ctx)

	logger.Debug("Reading project manifest.", "path", pyproject.Filename)
	manifest, err := pyproject.Load(pyproject.Filename)
	if err != nil {
		return nil, nil, err
	}

	// Poetry cannot lock build-system.requires, so released builds verify
	// here that the manifest pins exactly the pydust version that is
	// running. Local development builds report 0.1.0 and skip the check.
	if !version.IsDev() {
		if err := checkRequires(manifest.Requires(), version.Version); err != nil {
			return nil, nil, err
		}
	}

	tbl, err := manifest.PydustTable()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Extracting tool.pydust table.", "keys", len(tbl))

	cfg, err := fromTable(tbl)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Project configuration loaded.",
		"modules", len(cfg.ExtModules),
		"self_managed", cfg.SelfManaged,
		"zig_tests", cfg.ZigTests,
	)
	return cfg, manifest, nil
}

// checkRequires verifies that every build-system requirement naming this
// tool pins exactly the running version.
func checkRequires(requires []string, running string) error {
	expected := distName + "==" + running
	for _, req := range requires {
		if !strings.HasPrefix(req, distName) {
			continue
		}
		if req != expected {
			return fmt.Errorf("%w: detected misconfigured %s: you must include %q in build-system.requires in pyproject.toml",
				ErrInvalidConfig, distName, expected)
		}
	}
	return nil
}
