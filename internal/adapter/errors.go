package adapter

import "errors"

// Sentinel errors returned by [UploadClient] implementations. Callers match
// them with [errors.Is]; the wrapped message carries the detail.
var (
	// ErrInvalidURL is returned when the endpoint cannot be parsed as an
	// absolute http(s) URL. No request is sent.
	ErrInvalidURL = errors.New("invalid endpoint url")

	// ErrInvalidResponse is returned when the transport fails, the request
	// times out, or the server answers with a status other than 200.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrInvalidData is returned when a 200 response body cannot be decoded
	// as an image.
	ErrInvalidData = errors.New("invalid image data")
)
