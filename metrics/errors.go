package metrics

import "errors"

var (
	// ErrUnknownFeature indicates the target feature is not a column of the
	// evaluated table.
	ErrUnknownFeature = errors.New("metrics: target feature not in evaluated table")

	// ErrNoDefinedIRR indicates every iteration's IRR was undefined, so the
	// minimum-fallback policy has nothing to fall back to.
	ErrNoDefinedIRR = errors.New("metrics: no iteration produced a defined IRR")

	// ErrNilTable indicates a nil evaluated table.
	ErrNilTable = errors.New("metrics: nil table")
)
