package report

import "errors"

var (
	// ErrEmpty indicates an empty input series.
	ErrEmpty = errors.New("report: empty series")

	// ErrNaN indicates a NaN or infinite value in the input series.
	ErrNaN = errors.New("report: NaN or infinite value in series")

	// ErrInvalidBins indicates a non-positive bin count.
	ErrInvalidBins = errors.New("report: bins must be positive")
)
