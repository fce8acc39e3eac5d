// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-depth-capture/internal/adapter"
	"github.com/MKhiriev/go-depth-capture/internal/camera"
	"github.com/MKhiriev/go-depth-capture/internal/service"
)

// ErrSessionEnded is returned by Run when the controller stopped publishing
// before the user quit.
var ErrSessionEnded = errors.New("capture session ended")

// humanizeError turns controller and transport errors into a short line for
// the status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrBatchIncomplete):
		return "Capture 5 photos before sending"
	case errors.Is(err, service.ErrBatchFull):
		return "Batch is full: remove the last photo or reset"
	case errors.Is(err, service.ErrAlreadySending):
		return "Upload in progress"
	case errors.Is(err, service.ErrCaptureInProgress):
		return "Still capturing the previous photo"
	case errors.Is(err, camera.ErrPermissionDenied):
		return "Camera access denied"
	case errors.Is(err, service.ErrNoResult):
		return "Nothing to save yet"
	case errors.Is(err, adapter.ErrInvalidURL):
		return "Endpoint URL is invalid"
	case errors.Is(err, adapter.ErrInvalidData):
		return "Server reply is not an image"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
