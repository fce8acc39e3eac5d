package codec

import "errors"

var (
	ErrEmptyBatch        = errors.New("batch has no images")
	ErrTooManyImages     = errors.New("batch exceeds capacity")
	ErrInvalidBoundary   = errors.New("invalid multipart boundary")
	ErrBoundaryCollision = errors.New("boundary occurs inside image data")
)
