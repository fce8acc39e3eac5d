package codec

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/google/uuid"
)

const (
	// PartContentType is the content type announced for every image part.
	PartContentType = "image/jpeg"

	boundaryPrefix = "Boundary-"
)

// NewBoundary returns a boundary token that is unique per request.
func NewBoundary() string {
	id, err := uuid.NewV7()
	if err != nil {
		return boundaryPrefix + uuid.NewString()
	}
	return boundaryPrefix + id.String()
}

// FieldName returns the form field name of the i-th image (1-indexed).
func FieldName(i int) string {
	return fmt.Sprintf("image%d", i)
}

// FileName returns the advertised file name of the i-th image (1-indexed).
func FileName(i int) string {
	return fmt.Sprintf("image%d.jpg", i)
}

// BuildRequest describes the upload of images separated by boundary. Parts
// share the image byte slices; callers must not mutate them afterwards.
func BuildRequest(images []models.CapturedImage, boundary string) (models.UploadRequest, error) {
	if len(images) == 0 {
		return models.UploadRequest{}, ErrEmptyBatch
	}
	if len(images) > models.BatchCapacity {
		return models.UploadRequest{}, fmt.Errorf("%w: %d images", ErrTooManyImages, len(images))
	}
	if err := validateBoundary(boundary); err != nil {
		return models.UploadRequest{}, err
	}

	needle := []byte("--" + boundary)
	parts := make([]models.UploadPart, 0, len(images))
	for i, img := range images {
		if bytes.Contains(img.Data, needle) {
			return models.UploadRequest{}, fmt.Errorf("%w: %s", ErrBoundaryCollision, FieldName(i+1))
		}
		parts = append(parts, models.UploadPart{
			FieldName:   FieldName(i + 1),
			FileName:    FileName(i + 1),
			ContentType: PartContentType,
			Data:        img.Data,
		})
	}

	return models.UploadRequest{Boundary: boundary, Parts: parts}, nil
}

// EncodeRequest writes req as a multipart/form-data body. Lines are CRLF
// separated and the body ends with the closing delimiter line.
func EncodeRequest(req models.UploadRequest) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(req.Boundary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
	}

	for _, part := range req.Parts {
		header := make(textproto.MIMEHeader, 2)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, part.FieldName, part.FileName))
		header.Set("Content-Type", part.ContentType)

		pw, err := w.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", part.FieldName, err)
		}
		if _, err = pw.Write(part.Data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", part.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode is BuildRequest followed by EncodeRequest.
func Encode(images []models.CapturedImage, boundary string) ([]byte, error) {
	req, err := BuildRequest(images, boundary)
	if err != nil {
		return nil, err
	}
	return EncodeRequest(req)
}

func validateBoundary(boundary string) error {
	// mime/multipart applies the RFC 2046 rules; reuse them here so the
	// error surfaces before any part is built.
	if err := multipart.NewWriter(nil).SetBoundary(boundary); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
	}
	return nil
}
