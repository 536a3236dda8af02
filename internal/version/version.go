// Package version identifies the running pydust build.
package version

// dev is what locally built binaries report. Releases override Version at
// link time:
//
//	go build -ldflags "-X github.com/Sachaa-Thanasius/ziggy-pydust/internal/version.Version=1.2.3"
const dev = "0.1.0"

// Version is the release version of this tool.
var Version = dev

// IsDev reports whether this binary is a local development build. A dev
// build's version never matches a published requirement pin, so the
// build-system.requires check is skipped for it.
func IsDev() bool {
	return Version == dev
}
