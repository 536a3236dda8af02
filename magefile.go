//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default is the target run when mage is invoked with no arguments.
var Default = All

// All runs the full verification pipeline.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Build compiles the pydust command into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/pydust", "./cmd/pydust")
}

// Test runs the test suite with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs static analysis over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Release builds pydust with the given version stamped into the binary.
func Release(version string) error {
	ldflags := "-X github.com/Sachaa-Thanasius/ziggy-pydust/internal/version.Version=" + version
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/pydust", "./cmd/pydust")
}
