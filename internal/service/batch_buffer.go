package service

import "github.com/MKhiriev/go-depth-capture/models"

// ImageBuffer is the ordered, bounded collection of captured images. Its
// length never leaves [0, models.BatchCapacity]. It is not safe for
// concurrent use; the batch controller guards it.
type ImageBuffer struct {
	images []models.CapturedImage
}

// NewImageBuffer returns an empty buffer.
func NewImageBuffer() *ImageBuffer {
	return &ImageBuffer{images: make([]models.CapturedImage, 0, models.BatchCapacity)}
}

// Append adds img at the end. Fails with ErrBatchFull at capacity.
func (b *ImageBuffer) Append(img models.CapturedImage) error {
	if b.Full() {
		return ErrBatchFull
	}
	b.images = append(b.images, img)
	return nil
}

// RemoveLast drops the newest image. ok is false when the buffer is empty.
func (b *ImageBuffer) RemoveLast() (img models.CapturedImage, ok bool) {
	if len(b.images) == 0 {
		return models.CapturedImage{}, false
	}
	last := len(b.images) - 1
	img = b.images[last]
	b.images[last] = models.CapturedImage{}
	b.images = b.images[:last]
	return img, true
}

// Clear removes every image.
func (b *ImageBuffer) Clear() {
	clear(b.images)
	b.images = b.images[:0]
}

func (b *ImageBuffer) Len() int {
	return len(b.images)
}

func (b *ImageBuffer) Full() bool {
	return len(b.images) >= models.BatchCapacity
}

// Images returns a copy of the buffered images in capture order.
func (b *ImageBuffer) Images() []models.CapturedImage {
	out := make([]models.CapturedImage, len(b.images))
	copy(out, b.images)
	return out
}
