// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package camera provides capture sessions that hand JPEG photos to the batch
// controller.
//
// Hardware configuration (device selection, focus, exposure) and the
// permission prompt belong to the host platform. This package only defines
// the contract the controller depends on and two software sources: a
// synthetic renderer and a directory replayer.
package camera

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/capture_session_mock.go -package=mock

// CaptureSession produces raw image bytes on request. Only the batch
// controller pauses and resumes it.
type CaptureSession interface {
	// RequestPhoto blocks until one encoded JPEG photo is available. It fails
	// with [ErrSessionPaused] while paused and [ErrSessionClosed] after Close.
	RequestPhoto(ctx context.Context) ([]byte, error)

	// Pause stops the live stream. Idempotent.
	Pause()

	// Resume restarts the live stream. Idempotent.
	Resume()

	// Close releases the session. Further requests fail.
	Close() error
}
