package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyResult is returned when the result carries no decoded image.
	ErrEmptyResult = errors.New("result has no decoded image")

	// ErrPreparingOutputDir is returned when the output directory cannot be
	// created.
	ErrPreparingOutputDir = errors.New("failed to prepare output directory")

	// ErrWritingResult is returned when encoding or writing the file fails.
	ErrWritingResult = errors.New("failed to write result image")
)
