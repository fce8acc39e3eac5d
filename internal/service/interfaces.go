// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the capture-batch state machine and the
// operations built on top of it.
//
// [BatchController] owns the image buffer and the state tag, drives the
// capture session and uploads full batches through the adapter layer.
// [ResultService] saves the latest computed depth map. [DepthService] backs
// the local stub server with a cheap disparity preview.
package service

import (
	"context"

	"github.com/MKhiriev/go-depth-capture/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BatchController coordinates capture, buffering and upload of one batch of
// models.BatchCapacity photos. All methods are safe for concurrent use.
type BatchController interface {
	// Capture requests one photo from the capture session and appends it.
	// Valid in idle and capturing states. When the buffer becomes full the
	// session is paused and the state becomes full.
	// Returns ErrBatchFull, ErrCaptureInProgress, ErrInvalidState or an
	// error wrapping ErrCaptureFailed.
	Capture(ctx context.Context) error

	// RemoveLast drops the most recent image. A no-op on an empty buffer.
	// Resumes a paused session. Returns ErrAlreadySending while sending.
	RemoveLast() error

	// Reset clears the buffer, resumes the session and returns to idle from
	// any state. Completions of operations started before the reset are
	// discarded.
	Reset()

	// Send encodes the full batch and uploads it. Requires exactly
	// models.BatchCapacity images, otherwise ErrBatchIncomplete is returned
	// without any network call. Blocks until the upload completes.
	Send(ctx context.Context) error

	// Snapshot returns the current observable state.
	Snapshot() models.BatchSnapshot

	// Subscribe returns a channel receiving a snapshot after every mutation,
	// starting with the current one, and a function that cancels the
	// subscription and closes the channel. A slow subscriber only sees the
	// newest snapshot.
	Subscribe() (<-chan models.BatchSnapshot, func())

	// Close cancels every subscription.
	Close()
}

// ResultService exposes operations on the computed result.
type ResultService interface {
	// SaveLatest stores the current result and returns the written path.
	// Returns ErrNoResult when the controller holds no result.
	SaveLatest(ctx context.Context) (string, error)
}

// DepthService turns a batch of frames into a single grayscale preview image.
type DepthService interface {
	// Estimate decodes frames, compares every frame against the first one and
	// returns the JPEG-encoded result. Frames must number between 1 and
	// MaxDepthFrames.
	Estimate(ctx context.Context, frames [][]byte) ([]byte, error)
}
