package config

import "errors"

var (
	// ErrInvalidConfig indicates tool.pydust settings that contradict each
	// other, or a build-system requirement pinned to a different pydust
	// release than the one running.
	ErrInvalidConfig = errors.New("invalid pydust configuration")

	// ErrNonLimitedAPI indicates a derived path that is only implemented
	// for limited-API extension modules.
	ErrNonLimitedAPI = errors.New("only limited API extension modules are supported")
)
