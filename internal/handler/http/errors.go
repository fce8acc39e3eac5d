// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading the multipart upload. Callers can
// match against them with [errors.Is].
var (
	// ErrMalformedMultipart is returned when the body is not a readable
	// multipart/form-data stream or an image part is repeated.
	ErrMalformedMultipart = errors.New("malformed multipart body")

	// ErrNoImageParts is returned when the body contains no "image{i}" part.
	ErrNoImageParts = errors.New("no image parts in request")

	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
