package model

import "errors"

// Errors returned by the computation core. Callers match them with errors.Is;
// the wrapped message names the element and the constraint that failed.
var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrUnknownShape      = errors.New("unknown shape")
	ErrInvalidCoatCount  = errors.New("invalid coat count")
	ErrUnknownPaint      = errors.New("unknown paint")
	ErrInvalidPaint      = errors.New("invalid paint entry")
	ErrDuplicatePaint    = errors.New("duplicate paint")
	ErrEmptyJob          = errors.New("job has no rooms")
	ErrEmptyRoom         = errors.New("room has no walls")

	// ErrNegativeNetArea is only ever reported as a warning. The net area of
	// an over-obstructed wall is clamped to zero.
	ErrNegativeNetArea = errors.New("obstacles exceed wall area")
)
