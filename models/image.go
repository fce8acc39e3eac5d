package models

import (
	"image"
	"time"
)

// CapturedImage is one raw photo as produced by the capture session.
type CapturedImage struct {
	// Data holds the encoded JPEG bytes exactly as captured.
	Data []byte
	// CapturedAt is the wall-clock time the photo was appended to the batch.
	CapturedAt time.Time
}

// Size returns the number of encoded bytes.
func (c CapturedImage) Size() int {
	return len(c.Data)
}

// ResultImage is the computed image (a depth map) returned by the server.
type ResultImage struct {
	// Image is the decoded picture.
	Image image.Image
	// Raw holds the response body as received.
	Raw []byte
	// Format is the decoder name reported while decoding ("jpeg", "png", ...).
	Format string
	// ReceivedAt is the time the response was decoded.
	ReceivedAt time.Time
}

// Width returns the pixel width of the decoded image, or 0 when empty.
func (r ResultImage) Width() int {
	if r.Image == nil {
		return 0
	}
	return r.Image.Bounds().Dx()
}

// Height returns the pixel height of the decoded image, or 0 when empty.
func (r ResultImage) Height() int {
	if r.Image == nil {
		return 0
	}
	return r.Image.Bounds().Dy()
}
