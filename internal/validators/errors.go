package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyImage      = errors.New("image is empty")
	ErrNotJPEG         = errors.New("image is not a JPEG")
	ErrImageTooLarge   = errors.New("image exceeds size limit")
	ErrEmptyBoundary   = errors.New("boundary is required")
	ErrNoParts         = errors.New("upload has no parts")
	ErrTooManyParts    = errors.New("upload exceeds batch capacity")
	ErrInvalidPartName = errors.New("invalid part name")
	ErrInvalidPartType = errors.New("invalid part content type")
	ErrEmptyPartData   = errors.New("part data is required")
)
