package tracker

import "errors"

// Error kinds used across the package. Callers discriminate with errors.Is.
var (
	// ErrNotFound marks an expected file that is absent. Recoverable for
	// corpus entries (the stock is skipped), fatal for the index or a named
	// score file.
	ErrNotFound = errors.New("not found")

	// ErrParse marks a malformed row or value. Reported per row; the row is dropped.
	ErrParse = errors.New("parse error")

	// ErrInvalidArgument marks a caller-supplied value that is out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEngine marks a consistency failure inside the performance engine.
	ErrEngine = errors.New("engine error")
)
