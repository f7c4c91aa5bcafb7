package simulation

import "errors"

var (
	// ErrInvalidState indicates an operation not allowed in the engine's
	// current state, e.g. a second Run or a declaration after Run.
	ErrInvalidState = errors.New("simulation: invalid engine state")

	// ErrInvalidConfig indicates New was given an unusable configuration.
	ErrInvalidConfig = errors.New("simulation: invalid configuration")

	// ErrNoFullData indicates a Results query that needs the per-iteration
	// tables of a run configured WithFullData(false).
	ErrNoFullData = errors.New("simulation: full data not retained")
)
