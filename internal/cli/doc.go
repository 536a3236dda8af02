// Package cli implements the pydust command tree. It is responsible for
// parsing command-line arguments, configuring the process logger, and
// rendering the resolved project configuration for inspection.
package cli
