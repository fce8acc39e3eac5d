package service

import "errors"

// Batch controller errors. Callers should use [errors.Is] to match them.
var (
	// ErrBatchFull is returned by Capture when the buffer already holds
	// models.BatchCapacity images.
	ErrBatchFull = errors.New("batch is full")

	// ErrAlreadySending is returned by Send and RemoveLast while an upload is
	// in flight.
	ErrAlreadySending = errors.New("batch is already being sent")

	// ErrBatchIncomplete is returned by Send when the buffer does not hold
	// exactly models.BatchCapacity images. No network call is made.
	ErrBatchIncomplete = errors.New("batch is incomplete")

	// ErrCaptureFailed wraps the capture session error of a failed Capture.
	ErrCaptureFailed = errors.New("capture failed")

	// ErrCaptureInProgress is returned by Capture while another capture has
	// not completed yet.
	ErrCaptureInProgress = errors.New("capture already in progress")

	// ErrInvalidState is returned when a command is not valid in the current
	// state, e.g. Capture while sending.
	ErrInvalidState = errors.New("command not allowed in current state")

	// ErrDiscarded is returned by a capture or upload that completed after a
	// Reset. Its outcome is dropped.
	ErrDiscarded = errors.New("result discarded by reset")

	// ErrNoResult is returned by ResultService.SaveLatest when there is no
	// result to save.
	ErrNoResult = errors.New("no result to save")
)

// Depth estimation errors returned by DepthService.
var (
	// ErrNoFramesProvided is returned when Estimate receives no frames.
	ErrNoFramesProvided = errors.New("no frames provided")

	// ErrTooManyFramesProvided is returned when more than MaxDepthFrames
	// frames are submitted.
	ErrTooManyFramesProvided = errors.New("too many frames provided")

	// ErrUndecodableFrame wraps a decoding failure of one submitted frame.
	ErrUndecodableFrame = errors.New("frame is not a decodable image")
)
