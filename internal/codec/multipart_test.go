package codec

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/MKhiriev/go-depth-capture/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imagesOfSizes(sizes ...int) []models.CapturedImage {
	images := make([]models.CapturedImage, 0, len(sizes))
	for i, size := range sizes {
		data := bytes.Repeat([]byte{byte('a' + i)}, size)
		images = append(images, models.CapturedImage{Data: data})
	}
	return images
}

// ── Encode ───────────────────────────────────────────────────────────────────

func TestEncode_ExactLayout(t *testing.T) {
	images := []models.CapturedImage{{Data: []byte("JPEG-1")}, {Data: []byte("JPEG-2")}}

	body, err := Encode(images, "XYZ")
	require.NoError(t, err)

	want := "--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"image1\"; filename=\"image1.jpg\"\r\n" +
		"Content-Type: image/jpeg\r\n" +
		"\r\n" +
		"JPEG-1\r\n" +
		"--XYZ\r\n" +
		"Content-Disposition: form-data; name=\"image2\"; filename=\"image2.jpg\"\r\n" +
		"Content-Type: image/jpeg\r\n" +
		"\r\n" +
		"JPEG-2\r\n" +
		"--XYZ--\r\n"
	assert.Equal(t, want, string(body))
}

func TestEncode_RoundTrip(t *testing.T) {
	for n := 1; n <= models.BatchCapacity; n++ {
		sizes := []int{10, 20, 30, 40, 50}[:n]
		images := imagesOfSizes(sizes...)
		boundary := NewBoundary()

		body, err := Encode(images, boundary)
		require.NoError(t, err)

		reader := multipart.NewReader(bytes.NewReader(body), boundary)
		var got int
		for {
			part, err := reader.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)

			assert.Equal(t, FieldName(got+1), part.FormName())
			assert.Equal(t, FileName(got+1), part.FileName())
			assert.Equal(t, PartContentType, part.Header.Get("Content-Type"))

			data, err := io.ReadAll(part)
			require.NoError(t, err)
			assert.Equal(t, images[got].Data, data, "part %d must be byte-identical", got+1)
			got++
		}
		assert.Equal(t, n, got)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	images := imagesOfSizes(10, 20, 30, 40, 50)

	first, err := Encode(images, "fixed-boundary")
	require.NoError(t, err)
	second, err := Encode(images, "fixed-boundary")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncode_BinaryPayloadPreserved(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0x00, '\r', '\n', '-', '-', 0xFF, 0xD9}
	body, err := Encode([]models.CapturedImage{{Data: raw}}, "b0undary")
	require.NoError(t, err)

	form, err := multipart.NewReader(bytes.NewReader(body), "b0undary").ReadForm(1 << 20)
	require.NoError(t, err)
	fh := form.File["image1"]
	require.Len(t, fh, 1)
	f, err := fh[0].Open()
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		images   []models.CapturedImage
		boundary string
		wantErr  error
	}{
		{name: "empty batch", images: nil, boundary: "b", wantErr: ErrEmptyBatch},
		{name: "six images", images: imagesOfSizes(1, 1, 1, 1, 1, 1), boundary: "b", wantErr: ErrTooManyImages},
		{name: "empty boundary", images: imagesOfSizes(1), boundary: "", wantErr: ErrInvalidBoundary},
		{name: "boundary too long", images: imagesOfSizes(1), boundary: strings.Repeat("x", 71), wantErr: ErrInvalidBoundary},
		{name: "illegal character", images: imagesOfSizes(1), boundary: "bad\"quote", wantErr: ErrInvalidBoundary},
		{
			name:     "boundary inside data",
			images:   []models.CapturedImage{{Data: []byte("head--abc tail")}},
			boundary: "abc",
			wantErr:  ErrBoundaryCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Encode(tt.images, tt.boundary)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, body)
		})
	}
}

// ── BuildRequest ─────────────────────────────────────────────────────────────

func TestBuildRequest_PartsInBufferOrder(t *testing.T) {
	images := imagesOfSizes(3, 1, 2)

	req, err := BuildRequest(images, "bnd")
	require.NoError(t, err)

	require.Len(t, req.Parts, 3)
	for i, part := range req.Parts {
		assert.Equal(t, FieldName(i+1), part.FieldName)
		assert.Equal(t, FileName(i+1), part.FileName)
		assert.Equal(t, PartContentType, part.ContentType)
		assert.Equal(t, images[i].Data, part.Data)
	}

	mediaType, params, err := mime.ParseMediaType(req.ContentType())
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	assert.Equal(t, "bnd", params["boundary"])
}

// ── NewBoundary ──────────────────────────────────────────────────────────────

func TestNewBoundary_UniqueAndValid(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		b := NewBoundary()
		require.NoError(t, validateBoundary(b))
		assert.True(t, strings.HasPrefix(b, boundaryPrefix))
		_, dup := seen[b]
		assert.False(t, dup, "boundary %s repeated", b)
		seen[b] = struct{}{}
	}
}
