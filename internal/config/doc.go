// Package config models the tool.pydust table of pyproject.toml: the
// global build settings, the declared Zig extension modules, and the build
// paths derived from them.
//
// The model is the single source of truth for downstream build and test
// tooling. Load produces it at most once per process from the manifest in
// the working directory; everything after that reads the same cached
// instance. Manifest values arrive untyped and are validated field by field
// through the typeval package, so a mistyped key fails fast with a message
// naming the key rather than surfacing later as a broken build.
package config
