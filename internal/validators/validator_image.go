package validators

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-depth-capture/models"
)

const (
	FieldData       = "data"
	FieldJPEGMarker = "jpeg_marker"
	FieldSize       = "size"
	FieldBoundary   = "boundary"
	FieldParts      = "parts"
)

// DefaultMaxImageBytes bounds a single captured photo.
const DefaultMaxImageBytes = 20 << 20

// jpegMarker is the SOI marker followed by the first segment marker prefix.
var jpegMarker = []byte{0xFF, 0xD8, 0xFF}

type ImageValidator struct {
	maxImageBytes int
}

// NewImageValidator returns a validator for captured photos and upload
// requests. A non-positive maxImageBytes selects DefaultMaxImageBytes.
func NewImageValidator(maxImageBytes int) Validator {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	return &ImageValidator{maxImageBytes: maxImageBytes}
}

func (v *ImageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CapturedImage:
		return v.validateCapturedImage(ctx, value, fields...)
	case *models.CapturedImage:
		return v.validateCapturedImage(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ImageValidator) validateCapturedImage(ctx context.Context, img models.CapturedImage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData, FieldJPEGMarker, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			if len(img.Data) == 0 {
				return ErrEmptyImage
			}
		case FieldJPEGMarker:
			if !bytes.HasPrefix(img.Data, jpegMarker) {
				return ErrNotJPEG
			}
		case FieldSize:
			if img.Size() > v.maxImageBytes {
				return fmt.Errorf("%w: %d bytes", ErrImageTooLarge, img.Size())
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ImageValidator) validateUploadRequest(ctx context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBoundary, FieldParts}
	}

	for _, f := range fields {
		switch f {
		case FieldBoundary:
			if req.Boundary == "" {
				return ErrEmptyBoundary
			}
		case FieldParts:
			if len(req.Parts) == 0 {
				return ErrNoParts
			}
			if len(req.Parts) > models.BatchCapacity {
				return fmt.Errorf("%w: %d parts", ErrTooManyParts, len(req.Parts))
			}
			for i, part := range req.Parts {
				if err := v.validatePart(i+1, part); err != nil {
					return fmt.Errorf("validation error at part %d: %w", i+1, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ImageValidator) validatePart(index int, part models.UploadPart) error {
	if part.FieldName != fmt.Sprintf("image%d", index) || part.FileName != fmt.Sprintf("image%d.jpg", index) {
		return ErrInvalidPartName
	}
	if part.ContentType != "image/jpeg" {
		return ErrInvalidPartType
	}
	if len(part.Data) == 0 {
		return ErrEmptyPartData
	}
	return nil
}
