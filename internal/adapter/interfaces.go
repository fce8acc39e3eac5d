// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that ships a capture batch to
// the depth endpoint and turns the reply into a decoded image.
//
// The primary abstraction is [UploadClient], which decouples the batch
// controller from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPUploadClient]) built on resty.
//
// Error values defined in errors.go let callers classify failures with
// [errors.Is]: [ErrInvalidURL], [ErrInvalidResponse] (transport failure,
// timeout, non-200 status) and [ErrInvalidData] (undecodable body).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-depth-capture/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_client_mock.go -package=mock

// UploadClient performs one network round trip for an encoded batch.
type UploadClient interface {
	// Send POSTs body to endpointURL with the header
	// "Content-Type: multipart/form-data; boundary={boundary}" and decodes
	// the 200 response body as an image. It makes a single attempt and
	// never retries.
	Send(ctx context.Context, endpointURL string, body []byte, boundary string) (models.ResultImage, error)
}
